package pipeline

import (
	"context"
	"html/template"

	"github.com/alnah/go-mpdigest/internal/assets"
)

// Assembler renders a list of articles into a digest fragment.
type Assembler interface {
	Assemble(ctx context.Context, articles []Article, overview, date string) (string, error)
}

// simpleCard is the template data of one simple-layout card.
type simpleCard struct {
	Title        string
	Summary      template.HTML
	URL          string
	PlatformLink bool
	Theme        Theme
}

type simplePage struct {
	Date  string
	Cards []simpleCard
}

// SimpleAssembler renders one colour-rotated card per article.
type SimpleAssembler struct {
	layout *layout
	conv   HTMLConverter
}

// NewSimpleAssembler parses the simple template set from loader.
func NewSimpleAssembler(loader assets.Loader, conv HTMLConverter) (*SimpleAssembler, error) {
	l, err := parseLayout(loader, assets.SimpleSet)
	if err != nil {
		return nil, err
	}
	return &SimpleAssembler{layout: l, conv: conv}, nil
}

// Assemble renders cards in input order between the date header and the END
// footer. The simple layout has no overview slot; overview is ignored.
// Every card carries a link affordance, even when the URL is empty.
func (a *SimpleAssembler) Assemble(ctx context.Context, articles []Article, _ string, date string) (string, error) {
	page := simplePage{Date: date, Cards: make([]simpleCard, 0, len(articles))}

	for i, art := range articles {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		summary, err := summaryHTML(ctx, a.conv, art.Summary)
		if err != nil {
			return "", err
		}
		page.Cards = append(page.Cards, simpleCard{
			Title:        art.Title,
			Summary:      summary,
			URL:          art.URL,
			PlatformLink: IsPlatformLink(art.URL),
			Theme:        ThemeFor(i),
		})
	}

	return a.layout.execute(page)
}

// Compile-time interface check.
var _ Assembler = (*SimpleAssembler)(nil)
