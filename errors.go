package svcfmt

import (
	"errors"

	"github.com/alnah/go-svcfmt/internal/assets"
)

// Sentinel errors for library operations.
var (
	// Snippet errors.
	ErrUnknownSnippet     = errors.New("unknown snippet")
	ErrEmptySnippet       = errors.New("snippet text cannot be empty")
	ErrInvalidSnippetName = errors.New("invalid snippet name")
	ErrInvalidSnippetMode = errors.New("invalid snippet mode")

	// ErrNothingToUndo indicates there is no earlier value to restore.
	ErrNothingToUndo = errors.New("nothing to undo")

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidStyleName = assets.ErrInvalidStyleName
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
