package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ukeSJTU/termoj/api"
	"github.com/ukeSJTU/termoj/watch"
)

func CommandStatus(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	client := mustClient(cfg)
	r := newRenderer(cfg)
	id := mustID(args[0], "submission id")

	follow, _ := cmd.Flags().GetBool("watch")
	interval, _ := cmd.Flags().GetDuration("interval")
	if interval <= 0 {
		log.Fatalf("the poll interval must be positive, not %v", interval)
	}

	if !follow {
		snap, err := client.SubmissionStatus(context.Background(), id)
		if err != nil {
			if api.KindOf(err) == api.KindNotFound {
				log.Fatalf("submission %d not found, or not visible to you", id)
			}
			log.Fatalf("fetching submission %d: %v", id, err)
		}
		r.Snapshot(snap)
		if snap.Terminal() && !snap.Overall.Accepted() {
			os.Exit(exitRejected)
		}
		return
	}

	// ctrl+c stops watching; the submission keeps judging server-side
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := watch.Watch(ctx, client, id, watch.Options{InitialInterval: interval})
	final := r.Watch(id, events)
	client.Log.WithFields(logrus.Fields{
		"submission": id,
		"reason":     final.Reason,
	}).Info("watch finished")
	os.Exit(watchExitCode(final))
}

// watchExitCode maps a finished event to the documented exit status:
// 0 accepted, 2 any other final verdict, 1 when the session ended
// before a final verdict.
func watchExitCode(final watch.Event) int {
	if final.Reason == watch.StopTerminal && final.Snapshot != nil {
		if final.Snapshot.Overall.Accepted() {
			return exitOK
		}
		return exitRejected
	}
	return exitError
}

func CommandSubmissionList(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	client := mustClient(cfg)
	ctx := context.Background()

	// the history endpoint filters by username, so look ours up first
	profile, err := client.Profile(ctx)
	if err != nil {
		if api.KindOf(err) == api.KindUnauthorized {
			log.Fatalf("not logged in; run \"termoj auth login\" first")
		}
		log.Fatalf("fetching profile: %v", err)
	}

	problemID, _ := cmd.Flags().GetInt("problem")
	status, _ := cmd.Flags().GetString("status")
	language, _ := cmd.Flags().GetString("language")
	cursor, _ := cmd.Flags().GetString("cursor")

	subs, next, err := client.Submissions(ctx, api.SubmissionFilter{
		Username:  profile.Username,
		ProblemID: problemID,
		Status:    status,
		Language:  language,
		Cursor:    cursor,
	})
	if err != nil {
		log.Fatalf("listing submissions: %v", err)
	}

	r := newRenderer(cfg)
	r.Submissions(subs)
	r.NextCursor(next)
}

func CommandAbort(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	client := mustClient(cfg)
	id := mustID(args[0], "submission id")

	if err := client.Abort(context.Background(), id); err != nil {
		if api.KindOf(err) == api.KindNotFound {
			log.Fatalf("submission %d not found, or not visible to you", id)
		}
		log.Fatalf("aborting submission %d: %v", id, err)
	}
	log.Printf("submission %d aborted", id)
}
