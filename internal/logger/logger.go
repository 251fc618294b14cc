// Package logger builds the logrus logger shared by the CLI and the HTTP
// server, plus an adapter that feeds kratos framework logs into it.
package logger

import (
	"fmt"
	"io"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sirupsen/logrus"
)

// New creates a text logger writing to w. An unknown level falls back to info.
func New(level string, w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	l.SetOutput(w)
	return l
}

// KratosLogger adapts a logrus logger to the kratos log.Logger interface.
type KratosLogger struct {
	l *logrus.Logger
}

// NewKratosLogger wraps l.
func NewKratosLogger(l *logrus.Logger) *KratosLogger {
	return &KratosLogger{l: l}
}

// Log writes one entry. The log.DefaultMessageKey value becomes the message;
// every other pair becomes a field. Kratos fatal entries are logged at error
// level so the adapter never exits the process.
func (k *KratosLogger) Log(level log.Level, keyvals ...any) error {
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "KEYVALS UNPAIRED")
	}

	fields := make(logrus.Fields, len(keyvals)/2)
	var msg string
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		if key == log.DefaultMessageKey {
			msg = fmt.Sprint(keyvals[i+1])
			continue
		}
		fields[key] = keyvals[i+1]
	}

	k.l.WithFields(fields).Log(toLogrusLevel(level), msg)
	return nil
}

func toLogrusLevel(level log.Level) logrus.Level {
	switch level {
	case log.LevelDebug:
		return logrus.DebugLevel
	case log.LevelInfo:
		return logrus.InfoLevel
	case log.LevelWarn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

// Compile-time interface check.
var _ log.Logger = (*KratosLogger)(nil)
