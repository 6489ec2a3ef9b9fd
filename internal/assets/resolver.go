package assets

import (
	"errors"
	"slices"
)

// Resolver looks a style up in a custom directory first and falls back to
// the embedded styles when the directory does not have it.
type Resolver struct {
	custom   *DirStyles // nil without a custom directory
	embedded *EmbeddedStyles
}

// NewResolver builds a Resolver. An empty dir means embedded styles only.
func NewResolver(dir string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedStyles()}
	if dir == "" {
		return r, nil
	}

	custom, err := NewDirStyles(dir)
	if err != nil {
		return nil, err
	}
	r.custom = custom
	return r, nil
}

// LoadStyle loads name from the custom directory, then from embedded styles.
// Only a missing style falls back; invalid names and read errors do not.
func (r *Resolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	css, err := r.custom.LoadStyle(name)
	if !errors.Is(err, ErrStyleNotFound) {
		return css, err
	}
	return r.embedded.LoadStyle(name)
}

// StyleNames lists every style the resolver can load, sorted.
func (r *Resolver) StyleNames() []string {
	names := r.embedded.StyleNames()
	if r.custom != nil {
		names = append(names, r.custom.StyleNames()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// HasCustomDir reports whether a custom directory is configured.
func (r *Resolver) HasCustomDir() bool {
	return r.custom != nil
}

var _ StyleLoader = (*Resolver)(nil)
