package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-mpdigest"
	"github.com/alnah/go-mpdigest/internal/config"
)

// writeConfig writes a YAML config into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mpdigest.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig_Flags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		flags      commonFlags
		config     string
		wantLayout string
		wantErr    error
	}{
		{name: "defaults", wantLayout: "auto"},
		{name: "layout flag", flags: commonFlags{layout: "rich"}, wantLayout: "rich"},
		{name: "bad layout flag", flags: commonFlags{layout: "grid"}, wantErr: mpdigest.ErrInvalidLayout},
		{name: "config layout", config: "render:\n  layout: simple\n", wantLayout: "simple"},
		{name: "flag beats config", flags: commonFlags{layout: "rich"}, config: "render:\n  layout: simple\n", wantLayout: "rich"},
		{name: "bad config", config: "render:\n  unknown: 1\n", wantErr: config.ErrConfigParse},
		{name: "missing config", flags: commonFlags{config: "/no/such/dir/mpdigest.yaml"}, wantErr: config.ErrConfigNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := tt.flags
			if tt.config != "" {
				f.config = writeConfig(t, tt.config)
			}

			cfg, err := loadConfig(f)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("loadConfig() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() unexpected error: %v", err)
			}
			if cfg.Render.Layout != tt.wantLayout {
				t.Errorf("layout = %q, want %q", cfg.Render.Layout, tt.wantLayout)
			}
		})
	}
}

func TestNewLogger_Level(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Log.Level = "error"

	tests := []struct {
		name  string
		flags commonFlags
		want  logrus.Level
	}{
		{name: "cli default", want: logrus.WarnLevel},
		{name: "config level", flags: commonFlags{config: "x.yaml"}, want: logrus.ErrorLevel},
		{name: "verbose wins", flags: commonFlags{config: "x.yaml", verbose: true}, want: logrus.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(nil)
			if got := newLogger(cfg, tt.flags, env.Environment, "warn").GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}
