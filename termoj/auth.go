package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukeSJTU/termoj/api"
)

func CommandLogin(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		cmd.Help()
		os.Exit(1)
	}
	token := strings.TrimSpace(args[0])
	if token == "" {
		log.Fatalf("the token must not be empty")
	}

	cfg := mustLoadConfig()
	cfg.Token = token

	// try it out by fetching the profile it belongs to
	client := mustClient(cfg)
	profile, err := client.Profile(context.Background())
	if err != nil {
		if api.KindOf(err) == api.KindUnauthorized {
			log.Fatalf("the judge rejected this token; check it and try again")
		}
		log.Fatalf("verifying token: %v", err)
	}

	mustWriteConfig(cfg)

	name := profile.Username
	if profile.FriendlyName != "" {
		name = profile.FriendlyName
	}
	log.Printf("token verified and saved: welcome %s", name)
}

func CommandWhoami(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	if cfg.Token == "" {
		log.Fatalf("not logged in; run \"termoj auth login\" first")
	}

	client := mustClient(cfg)
	profile, err := client.Profile(context.Background())
	if err != nil {
		if api.KindOf(err) == api.KindUnauthorized {
			log.Fatalf("the stored token no longer works; run \"termoj auth login\" again")
		}
		log.Fatalf("fetching profile: %v", err)
	}
	newRenderer(cfg).Profile(profile)
}

func CommandLogout(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	if cfg.Token == "" {
		log.Printf("already logged out")
		return
	}
	cfg.Token = ""
	mustWriteConfig(cfg)
	log.Printf("token cleared")
}
