package pipeline

import (
	"context"
	"html/template"
	"strings"

	"github.com/alnah/go-mpdigest/internal/assets"
)

type richEntry struct {
	Number       int
	Title        string
	Summary      template.HTML
	URL          string
	PlatformLink bool
	Theme        Theme
}

type richSection struct {
	Key     string
	Title   string
	Theme   Theme
	Entries []richEntry
}

type richPage struct {
	Date     string
	Overview template.HTML
	Sections []richSection
}

// RichAssembler renders articles grouped by category with numbered entries.
type RichAssembler struct {
	layout *layout
	conv   HTMLConverter
}

// NewRichAssembler parses the rich template set from loader.
func NewRichAssembler(loader assets.Loader, conv HTMLConverter) (*RichAssembler, error) {
	l, err := parseLayout(loader, assets.RichSet)
	if err != nil {
		return nil, err
	}
	return &RichAssembler{layout: l, conv: conv}, nil
}

// Assemble renders one section per non-empty category. Entries are numbered
// from 1 within their section. A non-blank overview is inserted as is,
// without Markdown conversion, between the header and the first section.
// Articles without a URL get no link fragment.
func (a *RichAssembler) Assemble(ctx context.Context, articles []Article, overview, date string) (string, error) {
	page := richPage{Date: date}
	if strings.TrimSpace(overview) != "" {
		page.Overview = template.HTML(overview) // #nosec G203 -- overview is pre-formatted HTML
	}

	for si, group := range GroupByCategory(articles) {
		theme := ThemeFor(si)
		section := richSection{
			Key:     group.Key,
			Title:   group.Title,
			Theme:   theme,
			Entries: make([]richEntry, 0, len(group.Articles)),
		}
		for i, art := range group.Articles {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			summary, err := summaryHTML(ctx, a.conv, art.Summary)
			if err != nil {
				return "", err
			}
			section.Entries = append(section.Entries, richEntry{
				Number:       i + 1,
				Title:        art.Title,
				Summary:      summary,
				URL:          art.URL,
				PlatformLink: IsPlatformLink(art.URL),
				Theme:        theme,
			})
		}
		page.Sections = append(page.Sections, section)
	}

	return a.layout.execute(page)
}

// Compile-time interface check.
var _ Assembler = (*RichAssembler)(nil)
