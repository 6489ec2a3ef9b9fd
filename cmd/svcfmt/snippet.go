package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/alnah/go-svcfmt"
	"github.com/alnah/go-svcfmt/internal/hints"
)

// snippetPreviewWidth truncates snippet text in --list output.
const snippetPreviewWidth = 60

// runSnippetCmd handles the snippet command: apply a named snippet to a file
// or stdin, or list the available snippets.
func runSnippetCmd(args []string, env *Environment) error {
	flags, positional, err := parseSnippetFlags(args, env)
	if err != nil {
		return err
	}

	s, err := loadSettings(flags.common, env)
	if err != nil {
		return err
	}

	if flags.list {
		ed, err := svcfmt.NewEditor(nil, "", svcfmt.WithSnippets(s.snippets()...))
		if err != nil {
			return err
		}
		return printSnippets(ed.Snippets(), env)
	}

	if len(positional) == 0 || len(positional) > 2 {
		return fmt.Errorf("%w: snippet takes a name and an optional file", ErrUsage)
	}
	name := positional[0]
	input := ""
	if len(positional) == 2 {
		input = positional[1]
	}
	if flags.inPlace && flags.output != "" {
		return fmt.Errorf("%w: --in-place and --output", ErrConflictingFlags)
	}
	if flags.inPlace && (input == "" || input == "-") {
		return fmt.Errorf("%w: --in-place needs an input file", ErrNoInput)
	}

	raw, err := readInput(input, env)
	if err != nil {
		return err
	}

	ed, err := svcfmt.NewEditor(nil, raw, svcfmt.WithSnippets(s.snippets()...))
	if err != nil {
		return err
	}

	out, err := ed.ApplySnippet(name)
	if err != nil {
		if errors.Is(err, svcfmt.ErrUnknownSnippet) {
			return fmt.Errorf("%w%s", err, hints.ForUnknownSnippet(snippetNames(ed.Snippets())))
		}
		return err
	}

	if flags.inPlace {
		return rewriteInPlace(input, out)
	}
	return writeOutput(flags.output, out, env)
}

// printSnippets writes an aligned name/mode/text table.
func printSnippets(list []svcfmt.Snippet, env *Environment) error {
	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	for _, sn := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", sn.Name, sn.Mode, truncate(sn.Text, snippetPreviewWidth))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

func snippetNames(list []svcfmt.Snippet) []string {
	names := make([]string, len(list))
	for i, sn := range list {
		names[i] = sn.Name
	}
	return names
}

// truncate shortens s to n runes on one line.
func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
