package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// formatFlags holds flags that configure the Formatter.
type formatFlags struct {
	trustedDomain string
	style         string
	assetPath     string
}

// transformFlags holds all flags for the transform command.
type transformFlags struct {
	common  commonFlags
	format  formatFlags
	output  string
	inPlace bool
	html    bool
	title   string
	workers int
}

// previewFlags holds all flags for the preview command.
type previewFlags struct {
	common   commonFlags
	format   formatFlags
	output   string
	sanitize bool
	watch    bool
}

// snippetFlags holds all flags for the snippet command.
type snippetFlags struct {
	common  commonFlags
	output  string
	inPlace bool
	list    bool
}

// undoFlags holds all flags for the undo command.
type undoFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addFormatFlags adds Formatter flags to a FlagSet.
func addFormatFlags(fs *flag.FlagSet, f *formatFlags) {
	fs.StringVar(&f.trustedDomain, "trusted-domain", "", "domain whose links open in the same tab")
	fs.StringVar(&f.style, "style", "", "CSS style name, file path or content")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// parseTransformFlags parses transform command flags and returns positional args.
func parseTransformFlags(args []string, env *Environment) (*transformFlags, []string, error) {
	fs := flag.NewFlagSet("transform", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &transformFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.BoolVarP(&f.inPlace, "in-place", "i", false, "rewrite files, keeping a .orig backup")
	fs.BoolVar(&f.html, "html", false, "write a standalone HTML review page")
	fs.StringVar(&f.title, "title", "", "review page title (with --html)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addFormatFlags(fs, &f.format)

	fs.Usage = func() { printTransformUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string, env *Environment) (*previewFlags, []string, error) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &previewFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file")
	fs.BoolVar(&f.sanitize, "sanitize", false, "sanitize the preview fragment")
	fs.BoolVar(&f.watch, "watch", false, "re-render when the input file changes")

	addCommonFlags(fs, &f.common)
	addFormatFlags(fs, &f.format)

	fs.Usage = func() { printPreviewUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parseSnippetFlags parses snippet command flags and returns positional args.
func parseSnippetFlags(args []string, env *Environment) (*snippetFlags, []string, error) {
	fs := flag.NewFlagSet("snippet", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &snippetFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file")
	fs.BoolVarP(&f.inPlace, "in-place", "i", false, "rewrite the file, keeping a .orig backup")
	fs.BoolVarP(&f.list, "list", "l", false, "list available snippets")

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printSnippetUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parseUndoFlags parses undo command flags and returns positional args.
func parseUndoFlags(args []string, env *Environment) (*undoFlags, []string, error) {
	fs := flag.NewFlagSet("undo", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &undoFlags{}

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printUndoUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}
