package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukeSJTU/termoj/api"
)

func CommandProblemsetShow(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	client := mustClient(cfg)
	id := mustID(args[0], "problemset id")

	ps, err := client.Problemset(context.Background(), id)
	if err != nil {
		if api.KindOf(err) == api.KindNotFound {
			log.Fatalf("problemset %d not found, or not visible to you", id)
		}
		log.Fatalf("fetching problemset %d: %v", id, err)
	}
	newRenderer(cfg).ProblemsetDetail(ps)
}

func CommandProblemsetJoin(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	client := mustClient(cfg)
	id := mustID(args[0], "problemset id")

	if err := client.JoinProblemset(context.Background(), id); err != nil {
		log.Fatalf("joining problemset %d: %v", id, err)
	}
	log.Printf("joined problemset %d", id)
}

func CommandProblemsetQuit(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	client := mustClient(cfg)
	id := mustID(args[0], "problemset id")

	if err := client.QuitProblemset(context.Background(), id); err != nil {
		log.Fatalf("leaving problemset %d: %v", id, err)
	}
	log.Printf("left problemset %d", id)
}
