package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukeSJTU/termoj/api"
)

func CommandCourseList(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	client := mustClient(cfg)

	keyword, _ := cmd.Flags().GetString("keyword")
	term, _ := cmd.Flags().GetInt("term")
	tag, _ := cmd.Flags().GetInt("tag")
	cursor, _ := cmd.Flags().GetString("cursor")

	courses, next, err := client.Courses(context.Background(), api.CourseFilter{
		Keyword: keyword,
		Term:    term,
		Tag:     tag,
		Cursor:  cursor,
	})
	if err != nil {
		log.Fatalf("listing courses: %v", err)
	}

	r := newRenderer(cfg)
	r.Courses(courses)
	r.NextCursor(next)
}

func CommandCourseEnrolled(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	client := mustClient(cfg)

	courses, err := client.UserCourses(context.Background())
	if err != nil {
		if api.KindOf(err) == api.KindUnauthorized {
			log.Fatalf("not logged in; run \"termoj auth login\" first")
		}
		log.Fatalf("listing enrolled courses: %v", err)
	}
	newRenderer(cfg).Courses(courses)
}

func CommandCourseShow(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	client := mustClient(cfg)
	id := mustID(args[0], "course id")

	course, err := client.Course(context.Background(), id)
	if err != nil {
		if api.KindOf(err) == api.KindNotFound {
			log.Fatalf("course %d not found", id)
		}
		log.Fatalf("fetching course %d: %v", id, err)
	}
	newRenderer(cfg).CourseDetail(course)
}

func CommandCourseJoin(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	client := mustClient(cfg)
	id := mustID(args[0], "course id")

	if err := client.JoinCourse(context.Background(), id); err != nil {
		log.Fatalf("joining course %d: %v", id, err)
	}
	log.Printf("joined course %d", id)
}

func CommandCourseQuit(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	client := mustClient(cfg)
	id := mustID(args[0], "course id")

	if err := client.QuitCourse(context.Background(), id); err != nil {
		log.Fatalf("leaving course %d: %v", id, err)
	}
	log.Printf("left course %d", id)
}

func CommandCourseProblemsets(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	client := mustClient(cfg)
	id := mustID(args[0], "course id")

	sets, err := client.CourseProblemsets(context.Background(), id)
	if err != nil {
		if api.KindOf(err) == api.KindNotFound {
			log.Fatalf("course %d not found", id)
		}
		log.Fatalf("listing problemsets of course %d: %v", id, err)
	}

	r := newRenderer(cfg)
	if len(sets) > 0 {
		r.Message("course %d has %d problemset%s", id, len(sets), plural(len(sets)))
	}
	r.Problemsets(sets)
}
