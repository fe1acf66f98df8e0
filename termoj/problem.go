package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukeSJTU/termoj/api"
	"github.com/ukeSJTU/termoj/types"
)

func CommandProblemList(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	client := mustClient(cfg)

	keyword, _ := cmd.Flags().GetString("keyword")
	problemsetID, _ := cmd.Flags().GetInt("problemset")
	cursor, _ := cmd.Flags().GetString("cursor")

	problems, next, err := client.Problems(context.Background(), api.ProblemFilter{
		Keyword:      keyword,
		ProblemsetID: problemsetID,
		Cursor:       cursor,
	})
	if err != nil {
		log.Fatalf("listing problems: %v", err)
	}

	r := newRenderer(cfg)
	r.Problems(problems)
	r.NextCursor(next)
}

func CommandProblemShow(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	client := mustClient(cfg)
	id := mustID(args[0], "problem id")

	problem, err := client.Problem(context.Background(), id)
	if err != nil {
		if api.KindOf(err) == api.KindNotFound {
			log.Fatalf("problem %d not found, or not visible to you", id)
		}
		log.Fatalf("fetching problem %d: %v", id, err)
	}
	newRenderer(cfg).Statement(problem)
}

func CommandProblemSubmit(cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	id := mustID(args[0], "problem id")

	language, _ := cmd.Flags().GetString("language")
	public, _ := cmd.Flags().GetBool("public")
	if language == "" {
		log.Fatalf("pass --language to name the solution language (%s)", strings.Join(types.Languages, ", "))
	}
	language = strings.ToLower(language)
	if !types.ValidLanguage(language) {
		log.Fatalf("unsupported language %q; choose from %s", language, strings.Join(types.Languages, ", "))
	}

	code, err := os.ReadFile(args[1])
	if err != nil {
		log.Fatalf("reading %s: %v", args[1], err)
	}
	if len(code) == 0 {
		log.Fatalf("%s is empty; nothing to submit", args[1])
	}

	client := mustClient(cfg)
	submissionID, err := client.Submit(context.Background(), id, language, string(code), public)
	if err != nil {
		log.Fatalf("submitting to problem %d: %v", id, err)
	}

	r := newRenderer(cfg)
	r.Successf("submission %d created", submissionID)
	r.Message("follow it with: termoj submission status %d --watch", submissionID)
}
