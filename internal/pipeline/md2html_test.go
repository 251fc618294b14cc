package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()

	tests := []struct {
		name        string
		input       string
		wantContain []string
		wantAbsent  []string
	}{
		{
			name:        "bold",
			input:       "**b**",
			wantContain: []string{"<p><strong>b</strong></p>"},
		},
		{
			name:        "emphasis",
			input:       "*e*",
			wantContain: []string{"<em>e</em>"},
		},
		{
			name:        "newline becomes break",
			input:       "line one\nline two",
			wantContain: []string{"line one<br />"},
		},
		{
			name:        "headings one three four",
			input:       "# H1\n\n### H3\n\n#### H4",
			wantContain: []string{"<h1>H1</h1>", "<h3>H3</h3>", "<h4>H4</h4>"},
		},
		{
			name:        "unordered list",
			input:       "- a\n- b",
			wantContain: []string{"<ul>", "<li>a</li>", "<li>b</li>"},
		},
		{
			name:        "ordered list",
			input:       "1. first\n2. second",
			wantContain: []string{"<ol>", "<li>first</li>"},
		},
		{
			name:        "blockquote",
			input:       "> quoted",
			wantContain: []string{"<blockquote>", "<p>quoted</p>"},
		},
		{
			name:        "table",
			input:       "| a | b |\n|---|---|\n| 1 | 2 |",
			wantContain: []string{"<table>", "<td>1</td>"},
		},
		{
			name:        "footnote",
			input:       "text[^1]\n\n[^1]: note",
			wantContain: []string{`class="footnotes"`},
		},
		{
			name:        "raw html passes through",
			input:       `<span data-x="1">kept</span>`,
			wantContain: []string{`<span data-x="1">kept</span>`},
		},
		{
			name:        "code block uses inline styles",
			input:       "```go\nfmt.Println(1)\n```",
			wantContain: []string{"<pre", `style="`},
			wantAbsent:  []string{`class="chroma"`},
		},
		{
			name:       "no trailing newline",
			input:      "plain",
			wantAbsent: []string{"\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML(%q) = %q, missing %q", tt.input, got, want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("ToHTML(%q) = %q, should not contain %q", tt.input, got, absent)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_ArbitraryText(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()
	inputs := []string{"", "<<<>>>", "**unclosed", "```", "\x00\xff", strings.Repeat("> ", 200)}

	for _, in := range inputs {
		if _, err := conv.ToHTML(context.Background(), in); err != nil {
			t.Errorf("ToHTML(%q) unexpected error: %v", in, err)
		}
	}
}

func TestGoldmarkConverter_ToHTML_NoStateBetweenCalls(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()
	ctx := context.Background()

	first, err := conv.ToHTML(ctx, "a[^1]\n\n[^1]: one")
	if err != nil {
		t.Fatal(err)
	}
	again, err := conv.ToHTML(ctx, "a[^1]\n\n[^1]: one")
	if err != nil {
		t.Fatal(err)
	}
	if first != again {
		t.Errorf("same input rendered differently:\n%q\n%q", first, again)
	}
}

func TestGoldmarkConverter_ToHTML_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, "x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
