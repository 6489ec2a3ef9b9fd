package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirStyles serves styles from {dir}/styles/{name}.css on disk. Reads go
// through an os.Root, so symlinks and names cannot reach outside dir.
type DirStyles struct {
	dir string
}

// NewDirStyles checks that dir is a readable directory.
func NewDirStyles(dir string) (*DirStyles, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	root, err := os.OpenRoot(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	_ = root.Close()

	return &DirStyles{dir: abs}, nil
}

// LoadStyle reads the stylesheet called name.
func (d *DirStyles) LoadStyle(name string) (string, error) {
	root, err := os.OpenRoot(d.dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStyleRead, err)
	}
	defer func() { _ = root.Close() }()

	return readStyle(root.FS(), name)
}

// StyleNames lists the .css files in {dir}/styles.
func (d *DirStyles) StyleNames() []string {
	root, err := os.OpenRoot(d.dir)
	if err != nil {
		return nil
	}
	defer func() { _ = root.Close() }()

	return styleNames(root.FS())
}

var _ StyleLoader = (*DirStyles)(nil)
