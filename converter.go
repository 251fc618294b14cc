package mpdigest

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-mpdigest/internal/assets"
	"github.com/alnah/go-mpdigest/internal/dateutil"
	"github.com/alnah/go-mpdigest/internal/pipeline"
)

// Converter turns article lists into editor-ready HTML.
// A Converter is safe for concurrent use once built.
type Converter struct {
	cfg           converterConfig
	loader        assets.Loader
	htmlConverter pipeline.HTMLConverter
	simple        pipeline.Assembler
	rich          pipeline.Assembler
}

// NewConverter creates a Converter with the built-in templates.
// Returns ErrInvalidLayout or ErrInvalidDateFormat for bad options, or an
// error if a template set fails to load or parse.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:    defaultConverterConfig(),
		loader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(c)
	}

	layout, err := ParseLayout(string(c.cfg.layout))
	if err != nil {
		return nil, err
	}
	c.cfg.layout = layout

	if err := dateutil.Validate(c.cfg.dateFormat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}

	if c.htmlConverter == nil {
		c.htmlConverter = pipeline.NewGoldmarkConverter()
	}

	if c.simple == nil {
		c.simple, err = pipeline.NewSimpleAssembler(c.loader, c.htmlConverter)
		if err != nil {
			return nil, fmt.Errorf("initializing simple layout: %w", err)
		}
	}
	if c.rich == nil {
		c.rich, err = pipeline.NewRichAssembler(c.loader, c.htmlConverter)
		if err != nil {
			return nil, fmt.Errorf("initializing rich layout: %w", err)
		}
	}

	return c, nil
}

// Layout returns the default layout used when a request leaves Layout empty.
func (c *Converter) Layout() Layout {
	return c.cfg.layout
}

// Convert renders req and returns the HTML fragment.
// The request layout wins over the converter default; LayoutAuto is resolved
// with ResolveLayout. Output is a fragment, not a full document.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, req *ConvertRequest) (resp *ConvertResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: internal error: %v", ErrHTMLGeneration, r)
		}
	}()

	if req == nil {
		return nil, ErrNilRequest
	}

	layout := c.cfg.layout
	if req.Layout != "" {
		if layout, err = ParseLayout(string(req.Layout)); err != nil {
			return nil, err
		}
	}
	layout = ResolveLayout(layout, req)

	date, err := dateutil.Format(c.cfg.now(), c.cfg.dateFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}

	assembler := c.simple
	if layout == LayoutRich {
		assembler = c.rich
	}

	fragment, err := assembler.Assemble(ctx, toArticles(req.Articles), req.Overview, date)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrHTMLGeneration, err)
	}

	return &ConvertResponse{HTML: pipeline.InlineStyles(fragment)}, nil
}

// toArticles converts the public ArticleItem type to internal pipeline.Article.
func toArticles(items []ArticleItem) []pipeline.Article {
	out := make([]pipeline.Article, len(items))
	for i, it := range items {
		out[i] = pipeline.Article(it)
	}
	return out
}
