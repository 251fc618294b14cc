package assets

// Loader defines the contract for loading layout templates.
type Loader interface {
	// LoadTemplate loads one part of a layout (without .html extension).
	// Returns ErrTemplateNotFound if the part doesn't exist.
	// Returns ErrInvalidAssetName if either name contains invalid characters.
	LoadTemplate(set, part string) (string, error)

	// LoadTemplateSet loads every required part of a layout.
	// Returns ErrTemplateSetNotFound for unknown layouts and
	// ErrIncompleteTemplateSet when a required part is missing.
	LoadTemplateSet(name string) (*TemplateSet, error)
}
