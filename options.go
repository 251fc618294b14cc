package mpdigest

import (
	"time"

	"github.com/alnah/go-mpdigest/internal/dateutil"
	"github.com/alnah/go-mpdigest/internal/pipeline"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	layout     Layout
	dateFormat string
	now        func() time.Time
}

func defaultConverterConfig() converterConfig {
	return converterConfig{
		layout:     LayoutAuto,
		dateFormat: dateutil.DefaultFormat,
		now:        time.Now,
	}
}

// WithNow sets the clock used for the header date.
// Panics if now is nil (programmer error).
func WithNow(now func() time.Time) Option {
	if now == nil {
		panic("mpdigest: WithNow clock must not be nil")
	}
	return func(c *Converter) {
		c.cfg.now = now
	}
}

// WithLayout sets the layout used when a request leaves Layout empty.
// Invalid names are reported by NewConverter.
func WithLayout(layout string) Option {
	return func(c *Converter) {
		c.cfg.layout = Layout(layout)
	}
}

// WithDateFormat sets the header date format, either a preset name
// ("cn", "cn-y", "iso", "us") or a token pattern such as "YYYY年MM月DD日".
// Invalid formats are reported by NewConverter.
func WithDateFormat(format string) Option {
	return func(c *Converter) {
		c.cfg.dateFormat = format
	}
}

// WithMarkupConverter replaces the summary Markdown converter.
func WithMarkupConverter(conv pipeline.HTMLConverter) Option {
	return func(c *Converter) {
		c.htmlConverter = conv
	}
}
