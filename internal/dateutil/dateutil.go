// Package dateutil formats header dates from user-friendly token layouts.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates a layout that cannot be translated.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength bounds layout strings coming from config files.
const MaxFormatLength = 40

// DefaultFormat renders "10月14日" style dates.
const DefaultFormat = "MM月DD日"

// tokens is ordered longest first so "MMMM" wins over "MM".
var tokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named shortcuts accepted wherever a layout is.
var Presets = map[string]string{
	"cn":   DefaultFormat,
	"cn-y": "YYYY年MM月DD日",
	"iso":  "YYYY-MM-DD",
	"us":   "MM/DD/YYYY",
}

// piece is one parsed element of a format: a time layout for a single
// token, or literal text.
type piece struct {
	layout  string
	literal string
}

// parse splits a token format (YYYY, YY, MMMM, MMM, MM, M, DD, D) into
// pieces. Text inside [brackets] and every other character are literal,
// including multi-byte runes.
func parse(format string) ([]piece, error) {
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}
	if format == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxFormatLength {
		return nil, fmt.Errorf("%w: longer than %d bytes", ErrInvalidDateFormat, MaxFormatLength)
	}

	var pieces []piece
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return nil, fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidDateFormat, format)
			}
			pieces = append(pieces, piece{literal: rest[1:end]})
			rest = rest[end+1:]
			continue
		}
		p, n := piece{literal: rest[:1]}, 1
		for _, tk := range tokens {
			if strings.HasPrefix(rest, tk.token) {
				p, n = piece{layout: tk.layout}, len(tk.token)
				break
			}
		}
		pieces = append(pieces, p)
		rest = rest[n:]
	}
	return pieces, nil
}

// Validate reports whether format can be rendered.
func Validate(format string) error {
	_, err := parse(format)
	return err
}

// Format renders t with a token format. Literal text never reaches the
// time layout, so digits or month names in it are printed as written.
func Format(t time.Time, format string) (string, error) {
	pieces, err := parse(format)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, p := range pieces {
		if p.layout != "" {
			b.WriteString(t.Format(p.layout))
			continue
		}
		b.WriteString(p.literal)
	}
	return b.String(), nil
}
