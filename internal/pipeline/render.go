package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/alnah/go-mpdigest/internal/assets"
)

// ErrTemplateRender indicates a layout template failed to execute.
var ErrTemplateRender = errors.New("template rendering failed")

// layout is a parsed template set plus the name of its root part.
type layout struct {
	tmpl *template.Template
	root string
}

// parseLayout loads a template set and parses every part under its own name.
func parseLayout(loader assets.Loader, name string) (*layout, error) {
	ts, err := loader.LoadTemplateSet(name)
	if err != nil {
		return nil, err
	}

	parts := assets.RequiredParts(name)
	tmpl := template.New(name)
	for _, part := range parts {
		if _, err := tmpl.New(part).Parse(ts.Parts[part]); err != nil {
			return nil, fmt.Errorf("parsing %s/%s template: %w", name, part, err)
		}
	}
	return &layout{tmpl: tmpl, root: parts[0]}, nil
}

func (l *layout) execute(data any) (string, error) {
	var buf bytes.Buffer
	if err := l.tmpl.ExecuteTemplate(&buf, l.root, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// summaryHTML converts a Markdown summary. A conversion failure falls back to
// the raw text so one odd summary never sinks the whole digest; only
// cancellation is reported.
func summaryHTML(ctx context.Context, conv HTMLConverter, text string) (template.HTML, error) {
	out, err := conv.ToHTML(ctx, text)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return template.HTML(text), nil // #nosec G203 -- summaries are trusted editor input
	}
	return template.HTML(out), nil // #nosec G203 -- converter output
}
