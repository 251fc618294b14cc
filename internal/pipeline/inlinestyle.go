package pipeline

import "strings"

// tagStyle is the default inline style of one tag name.
type tagStyle struct {
	tag   string
	style string
}

// defaultStyles covers the tags Markdown conversion emits. h2 is absent on
// purpose: the assemblers style their own h2 titles.
var defaultStyles = []tagStyle{
	{"p", "margin: 0 0 12px 0; line-height: 1.75; color: #4A5568;"},
	{"ul", "margin: 12px 0; padding-left: 24px; line-height: 1.75; color: #4A5568;"},
	{"ol", "margin: 12px 0; padding-left: 24px; line-height: 1.75; color: #4A5568;"},
	{"li", "margin: 6px 0; color: #4A5568;"},
	{"strong", "font-weight: 600; color: #2C5F8D;"},
	{"blockquote", "margin: 16px 0; padding: 16px 20px; background: linear-gradient(135deg, #E8F4FD 0%, #E0F7F4 100%); border-left: 4px solid #4A90E2; border-radius: 8px; color: #4A5568; font-style: normal;"},
	{"h1", "font-size: 26px; font-weight: 600; margin: 24px 0 16px 0; color: #2C5F8D; line-height: 1.4;"},
	{"h3", "font-size: 20px; font-weight: 600; margin: 20px 0 12px 0; color: #2C5F8D; line-height: 1.4;"},
	{"h4", "font-size: 18px; font-weight: 600; margin: 16px 0 10px 0; color: #2C5F8D; line-height: 1.4;"},
}

// InlineStyles adds the default style attribute to every opening p, ul, ol,
// li, strong, blockquote, h1, h3 and h4 tag that has no "style=" before its
// closing '>'. Tags that already carry a style are left untouched, which
// makes a second pass a no-op.
//
// This is a text scan, not an HTML parse: a tag-like string inside an
// attribute value is treated as a tag.
func InlineStyles(html string) string {
	for _, ts := range defaultStyles {
		html = injectTagStyle(html, ts.tag, ts.style)
	}
	return html
}

// injectTagStyle inserts ` style="..."` right after each matching tag name.
func injectTagStyle(html, tag, style string) string {
	open := "<" + tag
	if !strings.Contains(html, open) {
		return html
	}

	attr := ` style="` + style + `"`
	var b strings.Builder
	b.Grow(len(html) + 4*len(attr))

	rest := html
	for {
		i := strings.Index(rest, open)
		if i == -1 {
			break
		}
		end := i + len(open)
		b.WriteString(rest[:end])
		rest = rest[end:]
		if endsTagName(rest) && !hasStyleAttr(rest) {
			b.WriteString(attr)
		}
	}
	b.WriteString(rest)
	return b.String()
}

// endsTagName reports whether the text after "<tag" terminates the name,
// so "<p" matches "<p>" and "<p class" but not "<pre>".
func endsTagName(rest string) bool {
	if rest == "" {
		return true
	}
	switch rest[0] {
	case ' ', '\t', '\n', '\r', '\f', '/', '>':
		return true
	}
	return false
}

// hasStyleAttr reports whether "style=" appears before the tag's closing '>'.
func hasStyleAttr(rest string) bool {
	if i := strings.IndexByte(rest, '>'); i != -1 {
		rest = rest[:i]
	}
	return strings.Contains(rest, "style=")
}
