package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  logrus.Level
	}{
		{level: "debug", want: logrus.DebugLevel},
		{level: "warn", want: logrus.WarnLevel},
		{level: "", want: logrus.InfoLevel},
		{level: "loud", want: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			if got := New(tt.level, &bytes.Buffer{}).GetLevel(); got != tt.want {
				t.Errorf("New(%q).GetLevel() = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestNew_WritesText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New("info", &buf)
	l.WithField("path", "/convert").Info("request served")
	l.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, `msg="request served"`) || !strings.Contains(out, "path=/convert") {
		t.Errorf("output = %q, want message and field", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug entry should be filtered at info level")
	}
}

func TestKratosLogger_Log(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     log.Level
		keyvals   []any
		wantLevel logrus.Level
		wantMsg   string
		wantField map[string]any
	}{
		{
			name:      "message and fields",
			level:     log.LevelInfo,
			keyvals:   []any{log.DefaultMessageKey, "server started", "addr", "0.0.0.0:8000"},
			wantLevel: logrus.InfoLevel,
			wantMsg:   "server started",
			wantField: map[string]any{"addr": "0.0.0.0:8000"},
		},
		{
			name:      "debug",
			level:     log.LevelDebug,
			keyvals:   []any{log.DefaultMessageKey, "tick"},
			wantLevel: logrus.DebugLevel,
			wantMsg:   "tick",
		},
		{
			name:      "warn",
			level:     log.LevelWarn,
			keyvals:   []any{"k", 1},
			wantLevel: logrus.WarnLevel,
			wantField: map[string]any{"k": 1},
		},
		{
			name:      "fatal becomes error",
			level:     log.LevelFatal,
			keyvals:   []any{log.DefaultMessageKey, "bad"},
			wantLevel: logrus.ErrorLevel,
			wantMsg:   "bad",
		},
		{
			name:      "unpaired keyvals",
			level:     log.LevelError,
			keyvals:   []any{"orphan"},
			wantLevel: logrus.ErrorLevel,
			wantField: map[string]any{"orphan": "KEYVALS UNPAIRED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base, hook := test.NewNullLogger()
			base.SetLevel(logrus.DebugLevel)

			if err := NewKratosLogger(base).Log(tt.level, tt.keyvals...); err != nil {
				t.Fatalf("Log() unexpected error: %v", err)
			}

			entry := hook.LastEntry()
			if entry == nil {
				t.Fatal("no entry logged")
			}
			if entry.Level != tt.wantLevel {
				t.Errorf("level = %v, want %v", entry.Level, tt.wantLevel)
			}
			if entry.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", entry.Message, tt.wantMsg)
			}
			for k, v := range tt.wantField {
				if entry.Data[k] != v {
					t.Errorf("field %s = %v, want %v", k, entry.Data[k], v)
				}
			}
			if _, ok := entry.Data[log.DefaultMessageKey]; ok {
				t.Error("message key should not be duplicated as a field")
			}
		})
	}
}
