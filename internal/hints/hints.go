// Package hints builds the "hint:" lines appended to CLI error messages.
// Every helper returns either "" or a string starting with "\n  hint: ", so
// callers can append the result unconditionally.
package hints

import (
	"path/filepath"
	"strconv"
	"strings"
)

const prefix = "\n  hint: "

// ForConfigNotFound points at --config, or at the first user-level location
// among searched where a named config would be picked up.
func ForConfigNotFound(searched []string) string {
	for _, p := range searched {
		if filepath.IsAbs(p) {
			return join("pass --config <file>", "or create "+p)
		}
	}
	return join("pass --config <file>")
}

// ForOutputDirectory is attached when an output directory cannot be created.
func ForOutputDirectory() string {
	return join("the parent of --output must exist and be writable")
}

// ForOutputRequired explains how to direct several outputs.
func ForOutputRequired() string {
	return join("-o <dir> mirrors the inputs into a directory", "-i rewrites them and keeps .orig backups")
}

// ForStyleNotFound lists the style names that resolve.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return join("styles: " + strings.Join(available, ", "))
}

// ForUnknownSnippet lists the snippet names that can be applied.
func ForUnknownSnippet(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return join("snippets: "+strings.Join(available, ", "), "custom ones go under 'snippets:' in the config file")
}

// ForNothingToUndo explains where undo looks for the previous text.
func ForNothingToUndo() string {
	return join("undo restores the .orig copy written by --in-place")
}

// ForInputTooLarge states the input cap.
func ForInputTooLarge(limit int64) string {
	return join("inputs are capped at " + humanBytes(limit) + "; split the file")
}

func humanBytes(n int64) string {
	const mib = 1 << 20
	if n >= mib && n%mib == 0 {
		return strconv.FormatInt(n/mib, 10) + " MiB"
	}
	return strconv.FormatInt(n, 10) + " bytes"
}

// join renders non-empty parts as one hint line.
func join(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return prefix + strings.Join(kept, "; ")
}
