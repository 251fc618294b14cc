package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed templates
var templates embed.FS

// EmbeddedLoader loads templates from the embedded filesystem.
type EmbeddedLoader struct {
	fsys fs.FS
}

// NewEmbeddedLoader creates an EmbeddedLoader over the built-in templates.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fsys: templates}
}

// LoadTemplate loads templates/{set}/{part}.html.
func (e *EmbeddedLoader) LoadTemplate(set, part string) (string, error) {
	if err := ValidateAssetName(set); err != nil {
		return "", err
	}
	if err := ValidateAssetName(part); err != nil {
		return "", err
	}

	content, err := fs.ReadFile(e.fsys, "templates/"+set+"/"+part+".html")
	if err != nil {
		return "", fmt.Errorf("%w: %s/%s", ErrTemplateNotFound, set, part)
	}
	return string(content), nil
}

// LoadTemplateSet loads every required part of a built-in layout.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	parts, ok := requiredParts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}

	ts := &TemplateSet{Name: name, Parts: make(map[string]string, len(parts))}
	for _, part := range parts {
		content, err := e.LoadTemplate(name, part)
		if err != nil {
			if errors.Is(err, ErrTemplateNotFound) {
				return nil, fmt.Errorf("%w: %s/%s.html", ErrIncompleteTemplateSet, name, part)
			}
			return nil, err
		}
		ts.Parts[part] = content
	}
	return ts, nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
