package main

import (
	"log"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/ukeSJTU/termoj/api"
	"github.com/ukeSJTU/termoj/config"
	"github.com/ukeSJTU/termoj/render"
)

// mustLoadConfig reads the termoj config file, exiting with advice when
// it is unreadable. A missing file is fine; login creates it.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("%v", err)
		log.Fatalf("you may wish to delete the file and run \"termoj auth login\" again")
	}
	return cfg
}

func mustWriteConfig(cfg *config.Config) {
	if err := cfg.Save(); err != nil {
		log.Fatalf("saving config: %v", err)
	}
}

// mustClient builds the API client for one command invocation: stored
// host and token, plus the shared file logger.
func mustClient(cfg *config.Config) *api.Client {
	logger, err := config.SetupLogging(apiDump)
	if err != nil {
		log.Fatalf("opening log file: %v", err)
	}
	client := api.NewClient(cfg.Host, cfg.TokenProvider())
	client.Dump = apiDump
	client.Log = logger
	return client
}

// newRenderer picks the output mode: plain when configured, or whenever
// stdout is not a terminal so piped output never carries escapes.
func newRenderer(cfg *config.Config) *render.Renderer {
	fd := int(os.Stdout.Fd())
	plain := cfg.Mode() == config.DisplayPlain || !term.IsTerminal(fd)
	r := render.New(os.Stdout, plain)
	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		r.Width = width
	}
	return r
}

// mustID parses a numeric command argument.
func mustID(arg, what string) int {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		log.Fatalf("%s must be a positive number, not %q", what, arg)
	}
	return id
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
