package svcfmt

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithSnippets adds snippets to an Editor. A snippet whose name matches a
// built-in one replaces it in place; new names are listed after the built-ins.
func WithSnippets(snippets ...Snippet) EditorOption {
	return func(e *Editor) {
		e.extra = append(e.extra, snippets...)
	}
}

// Editor is an editing session over one description field.
// It keeps the value from before the last Convert so it can be restored.
// An Editor is safe for concurrent use.
type Editor struct {
	formatter *Formatter
	extra     []Snippet

	mu       sync.Mutex
	value    string
	snapshot string // value restored by Undo

	snippets []Snippet // display order
	byName   map[string]int
}

// NewEditor starts a session with initial as the field value.
// A nil formatter uses default options.
// Returns error if a snippet given via WithSnippets is invalid.
func NewEditor(f *Formatter, initial string, opts ...EditorOption) (*Editor, error) {
	if f == nil {
		f = defaultFormatter
	}

	e := &Editor{
		formatter: f,
		value:     initial,
		snapshot:  initial,
		byName:    make(map[string]int),
	}

	for _, opt := range opts {
		opt(e)
	}

	for _, s := range DefaultSnippets() {
		e.addSnippet(s)
	}
	for _, s := range e.extra {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		e.addSnippet(s)
	}
	e.extra = nil

	return e, nil
}

// addSnippet registers s, replacing any snippet with the same name.
func (e *Editor) addSnippet(s Snippet) {
	if i, ok := e.byName[s.Name]; ok {
		e.snippets[i] = s
		return
	}
	e.byName[s.Name] = len(e.snippets)
	e.snippets = append(e.snippets, s)
}

// Value returns the current field value.
func (e *Editor) Value() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

// SetValue replaces the field value, as typing would.
func (e *Editor) SetValue(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value = v
}

// Convert remembers the current value for Undo, then replaces it with its
// formatted form. Returns the new value.
func (e *Editor) Convert() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.snapshot = e.value
	e.value = e.formatter.Transform(e.value)
	return e.value
}

// Undo restores the value remembered by the last Convert, or the initial
// value when nothing was converted yet. Undo can be repeated; it always
// restores the same value until the next Convert. Returns the new value.
func (e *Editor) Undo() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value = e.snapshot
	return e.value
}

// Preview renders the current value for live feedback.
func (e *Editor) Preview() string {
	return e.formatter.Preview(e.Value())
}

// AddPrefix puts line above the trimmed current value. Returns the new value.
func (e *Editor) AddPrefix(line string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value = prefixLine(e.value, line)
	return e.value
}

// AppendLine puts line below the current value. Returns the new value.
func (e *Editor) AppendLine(line string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value = appendLine(e.value, line)
	return e.value
}

// ApplySnippet inserts the named snippet according to its mode.
// Returns ErrUnknownSnippet if no snippet has that name.
func (e *Editor) ApplySnippet(name string) (string, error) {
	s, ok := e.Snippet(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSnippet, name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.value = ApplySnippet(e.value, s)
	return e.value, nil
}

// Snippet looks up a snippet by name.
func (e *Editor) Snippet(name string) (Snippet, bool) {
	i, ok := e.byName[name]
	if !ok {
		return Snippet{}, false
	}
	return e.snippets[i], true
}

// Snippets returns the available snippets in display order.
func (e *Editor) Snippets() []Snippet {
	return slices.Clone(e.snippets)
}

// ApplySnippet returns value with s inserted according to its mode.
func ApplySnippet(value string, s Snippet) string {
	if s.Mode == SnippetPrefix {
		return prefixLine(value, s.Text)
	}
	return appendLine(value, s.Text)
}

// prefixLine puts line above the trimmed value.
func prefixLine(value, line string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return line
	}
	return line + "\n" + value
}

// appendLine puts line below value. An empty value gets no leading newline.
func appendLine(value, line string) string {
	if value == "" {
		return line
	}
	return value + "\n" + line
}
