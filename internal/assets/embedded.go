package assets

import "embed"

//go:embed styles/*.css
var embedded embed.FS

// EmbeddedStyles serves the styles compiled into the binary.
type EmbeddedStyles struct{}

// NewEmbeddedStyles returns the built-in style source.
func NewEmbeddedStyles() *EmbeddedStyles {
	return &EmbeddedStyles{}
}

// LoadStyle returns the embedded stylesheet called name.
func (*EmbeddedStyles) LoadStyle(name string) (string, error) {
	return readStyle(embedded, name)
}

// StyleNames lists the embedded styles.
func (*EmbeddedStyles) StyleNames() []string {
	return styleNames(embedded)
}

var _ StyleLoader = (*EmbeddedStyles)(nil)
