package mpdigest

import (
	"fmt"
	"strings"
)

// ArticleItem is one article of a digest.
type ArticleItem struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"` // Markdown
	URL      string `json:"url"`
	Category string `json:"category,omitempty"` // "news", "model", "product" or free-form
}

// ConvertRequest is the input of one conversion.
type ConvertRequest struct {
	Articles []ArticleItem `json:"articles"`
	Overview string        `json:"overview,omitempty"` // Pre-formatted HTML, rich layout only
	Layout   Layout        `json:"layout,omitempty"`   // Empty = converter default
}

// ConvertResponse is the output of one conversion.
type ConvertResponse struct {
	HTML string `json:"html"`
}

// Layout selects a digest template set.
type Layout string

// Supported layouts.
const (
	LayoutAuto   Layout = "auto"
	LayoutSimple Layout = "simple"
	LayoutRich   Layout = "rich"
)

// Layouts returns the accepted layout names.
func Layouts() []string {
	return []string{string(LayoutAuto), string(LayoutSimple), string(LayoutRich)}
}

// ParseLayout normalizes a layout name. The empty string parses as LayoutAuto.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return LayoutAuto, nil
	case LayoutAuto, LayoutSimple, LayoutRich:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q (must be auto, simple or rich)", ErrInvalidLayout, s)
	}
}

// ResolveLayout turns LayoutAuto into a concrete layout: rich when the
// request carries a non-blank overview or any article has a category,
// simple otherwise. Concrete layouts are returned unchanged.
func ResolveLayout(layout Layout, req *ConvertRequest) Layout {
	if layout == LayoutSimple || layout == LayoutRich {
		return layout
	}
	if req == nil {
		return LayoutSimple
	}
	if strings.TrimSpace(req.Overview) != "" {
		return LayoutRich
	}
	for _, a := range req.Articles {
		if strings.TrimSpace(a.Category) != "" {
			return LayoutRich
		}
	}
	return LayoutSimple
}
