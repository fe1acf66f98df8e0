package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukeSJTU/termoj/api"
)

func CommandUserCourses(cmd *cobra.Command, args []string) {
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
		log.Fatalf("listing your courses: %v", err)
	}
	newRenderer(cfg).Courses(courses)
}

func CommandUserProblemsets(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	client := mustClient(cfg)

	sets, err := client.UserProblemsets(context.Background())
	if err != nil {
		if api.KindOf(err) == api.KindUnauthorized {
			log.Fatalf("not logged in; run \"termoj auth login\" first")
		}
		log.Fatalf("listing your problemsets: %v", err)
	}
	newRenderer(cfg).Problemsets(sets)
}
