package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

// DefaultStyleName is the style used when none is configured.
const DefaultStyleName = "default"

// stylesDir holds {name}.css files in every style source.
const stylesDir = "styles"

// Sentinel errors for style loading.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidStyleName = errors.New("invalid style name")
	ErrInvalidBasePath  = errors.New("invalid asset directory")
	ErrStyleRead        = errors.New("failed to read style")
)

// StyleLoader loads review-page stylesheets by name (without .css).
type StyleLoader interface {
	LoadStyle(name string) (string, error)
	StyleNames() []string
}

var defaultLoader = NewEmbeddedStyles()

// LoadStyle loads an embedded style by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// StyleNames lists the embedded style names, sorted.
func StyleNames() []string {
	return defaultLoader.StyleNames()
}

// ValidateStyleName rejects names that could select a file other than
// styles/{name}.css: empty names, separators, dots and NUL.
func ValidateStyleName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidStyleName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidStyleName, name)
	}
	return nil
}

// readStyle reads styles/{name}.css from fsys.
func readStyle(fsys fs.FS, name string) (string, error) {
	if err := ValidateStyleName(name); err != nil {
		return "", err
	}

	data, err := fs.ReadFile(fsys, stylesDir+"/"+name+".css")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
		}
		return "", fmt.Errorf("%w: %q: %v", ErrStyleRead, name, err)
	}
	return string(data), nil
}

// styleNames lists valid style names under fsys/styles, sorted.
// An unreadable directory yields no names.
func styleNames(fsys fs.FS) []string {
	entries, err := fs.ReadDir(fsys, stylesDir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(entry.Name(), ".css"); ok && ValidateStyleName(name) == nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
