package assets

// TemplateSet holds the fragment templates of one layout.
type TemplateSet struct {
	Name  string            // Layout name ("simple", "rich")
	Parts map[string]string // Template source keyed by part name
}

// Layout names with built-in template sets.
const (
	SimpleSet = "simple"
	RichSet   = "rich"
)

// requiredParts lists the parts each built-in layout cannot render without.
// The first entry is the root template executed by the assembler.
var requiredParts = map[string][]string{
	SimpleSet: {"page", "header", "card", "footer"},
	RichSet:   {"page", "header", "overview", "section", "entry", "footer"},
}

// RequiredParts returns the part names of a layout, root first.
func RequiredParts(name string) []string {
	parts := requiredParts[name]
	out := make([]string, len(parts))
	copy(out, parts)
	return out
}
