package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukeSJTU/termoj/config"
)

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Token != "" || cfg.Host != "" || cfg.DisplayMode != "" {
		t.Fatalf("expected defaults from a missing file, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)

	cfg := &config.Config{
		Token:       "jaccount-session",
		Host:        "https://acm.sjtu.edu.cn/OnlineJudge",
		DisplayMode: config.DisplayPlain,
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	path := filepath.Join(home, "config.json")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected the token file to be private, got %04o", perm)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasSuffix(string(raw), "\n") {
		t.Error("expected a trailing newline")
	}

	got, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("round trip mismatch: expected %+v, got %+v", cfg, got)
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	if err := os.WriteFile(filepath.Join(home, "config.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error for a corrupt config file")
	}
}

func TestPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)

	dir, err := config.Dir()
	if err != nil {
		t.Fatalf("dir: %v", err)
	}
	if dir != home {
		t.Fatalf("expected TERMOJ_HOME to win, got %s", dir)
	}
	path, err := config.Path()
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if path != filepath.Join(home, "config.json") {
		t.Fatalf("unexpected config path %s", path)
	}
	logPath, err := config.LogPath()
	if err != nil {
		t.Fatalf("log path: %v", err)
	}
	if logPath != filepath.Join(home, "logs", "termoj.log") {
		t.Fatalf("unexpected log path %s", logPath)
	}
}

func TestMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		stored string
		want   string
	}{
		{stored: "", want: config.DisplayColor},
		{stored: config.DisplayColor, want: config.DisplayColor},
		{stored: config.DisplayPlain, want: config.DisplayPlain},
		{stored: "cartoon", want: config.DisplayColor},
	}
	for _, tt := range tests {
		tt := tt
		t.Run("stored "+tt.stored, func(t *testing.T) {
			t.Parallel()
			cfg := &config.Config{DisplayMode: tt.stored}
			if got := cfg.Mode(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSet(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{name: "display plain", key: "display_mode", value: "plain"},
		{name: "display color", key: "display_mode", value: "color"},
		{name: "display invalid", key: "display_mode", value: "rich", wantErr: true},
		{name: "host https", key: "host", value: "https://acm.sjtu.edu.cn/OnlineJudge"},
		{name: "host local", key: "host", value: "http://localhost:8000"},
		{name: "host not a url", key: "host", value: "acm.sjtu.edu.cn", wantErr: true},
		{name: "host wrong scheme", key: "host", value: "ftp://acm.sjtu.edu.cn", wantErr: true},
		{name: "unknown key", key: "theme", value: "dark", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &config.Config{}
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected %s=%s to be rejected", tt.key, tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, err := cfg.Get(tt.key)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got != tt.value {
				t.Fatalf("expected %q, got %q", tt.value, got)
			}
		})
	}
}

func TestGetUnknownKey(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{}
	if _, err := cfg.Get("theme"); err == nil {
		t.Fatal("expected an error for an unknown option")
	}
}

func TestResetKeepsToken(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{
		Token:       "jaccount-session",
		Host:        "http://localhost:8000",
		DisplayMode: config.DisplayPlain,
	}
	cfg.Reset()
	if cfg.Token != "jaccount-session" {
		t.Error("reset must not log the user out")
	}
	if cfg.Host != "" || cfg.DisplayMode != "" {
		t.Errorf("expected options cleared, got %+v", cfg)
	}
}

func TestTokenProvider(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{Token: "before"}
	token := cfg.TokenProvider()
	if got := token(); got != "before" {
		t.Fatalf("expected %q, got %q", "before", got)
	}
	cfg.Token = "after"
	if got := token(); got != "after" {
		t.Fatalf("expected the provider to see the new token, got %q", got)
	}
}
