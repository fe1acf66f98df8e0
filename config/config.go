// Package config reads and writes the per-user termoj settings kept in
// a dotfile under the home directory. Commands load it once at startup
// and save it back after mutating commands such as login and logout.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	dirName        = ".termoj"
	configFileName = "config.json"
	logsDirName    = "logs"
	logFileName    = "termoj.log"

	// EnvHome overrides the settings directory, mainly for tests.
	EnvHome = "TERMOJ_HOME"
)

// Display modes accepted by the display_mode option.
const (
	DisplayColor = "color"
	DisplayPlain = "plain"
)

// Config is the on-disk shape of ~/.termoj/config.json. Empty fields
// are omitted so a fresh file only records what the user has set.
type Config struct {
	Token       string `json:"token,omitempty"`
	Host        string `json:"host,omitempty"`
	DisplayMode string `json:"display_mode,omitempty"`
}

// Dir returns the settings directory, honoring the TERMOJ_HOME
// override.
func Dir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// Path returns the location of the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// LogPath returns the location of the shared log file.
func LogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logsDirName, logFileName), nil
}

// Load reads the config file. A missing file is not an error; it yields
// the defaults so first-run commands work before login.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg := &Config{}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config file, creating the settings directory on
// first use. The file holds the session token, so it is not group or
// world readable.
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	raw, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	raw = append(raw, '\n')
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, raw, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Mode returns the effective display mode. Anything but an explicit
// "plain" means colored output.
func (c *Config) Mode() string {
	if c.DisplayMode == DisplayPlain {
		return DisplayPlain
	}
	return DisplayColor
}

// TokenProvider returns the token source the API client polls before
// each request.
func (c *Config) TokenProvider() func() string {
	return func() string { return c.Token }
}

// Options lists the keys accepted by Get and Set, sorted for display.
func Options() []string {
	keys := []string{"display_mode", "host"}
	sort.Strings(keys)
	return keys
}

// Get returns the stored value for an option key. Unset options return
// the empty string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "display_mode":
		return c.DisplayMode, nil
	case "host":
		return c.Host, nil
	}
	return "", unknownOption(key)
}

// Set validates and stores a value for an option key. The caller is
// responsible for saving afterwards.
func (c *Config) Set(key, value string) error {
	switch key {
	case "display_mode":
		if value != DisplayPlain && value != DisplayColor {
			return fmt.Errorf("display_mode must be %q or %q", DisplayPlain, DisplayColor)
		}
		c.DisplayMode = value
		return nil
	case "host":
		u, err := url.Parse(value)
		if err != nil || u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
			return fmt.Errorf("host must be an http or https URL")
		}
		c.Host = value
		return nil
	}
	return unknownOption(key)
}

func unknownOption(key string) error {
	return fmt.Errorf("unknown option %q; options are: %s", key, strings.Join(Options(), ", "))
}

// Reset clears every option back to its default but keeps the session
// token, so resetting display preferences does not log the user out.
func (c *Config) Reset() {
	c.Host = ""
	c.DisplayMode = ""
}
