package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukeSJTU/termoj/api"
	"github.com/ukeSJTU/termoj/config"
)

func CommandConfigView(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()

	path, err := config.Path()
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("config file: %s\n", path)

	host := cfg.Host
	if host == "" {
		host = api.DefaultBaseURL + " (default)"
	}
	fmt.Printf("host: %s\n", host)

	mode := cfg.Mode()
	if cfg.DisplayMode == "" {
		mode += " (default)"
	}
	fmt.Printf("display_mode: %s\n", mode)

	if cfg.Token == "" {
		fmt.Println("token: not set; run \"termoj auth login\"")
	} else {
		fmt.Println("token: set")
	}
}

func CommandConfigGet(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	value, err := cfg.Get(args[0])
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println(value)
}

func CommandConfigSet(cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	if err := cfg.Set(args[0], args[1]); err != nil {
		log.Fatalf("%v", err)
	}
	mustWriteConfig(cfg)
	log.Printf("%s set to %s", args[0], args[1])
}

func CommandConfigReset(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		cmd.Help()
		os.Exit(1)
	}
	cfg := mustLoadConfig()
	cfg.Reset()
	mustWriteConfig(cfg)
	log.Printf("settings reset to defaults; token kept")
}
