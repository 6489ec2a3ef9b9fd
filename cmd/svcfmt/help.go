package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svcfmt <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  transform  Format service descriptions")
	fmt.Fprintln(w, "  preview    Render a live-typing preview fragment")
	fmt.Fprintln(w, "  snippet    Insert a standard snippet")
	fmt.Fprintln(w, "  undo       Restore files rewritten with --in-place")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'svcfmt help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags shared by every command.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
}

// printFormatUsage prints the Formatter flags.
func printFormatUsage(w io.Writer) {
	fmt.Fprintln(w, "Formatting:")
	fmt.Fprintln(w, "      --trusted-domain <d>  Links to this domain open in the same tab")
	fmt.Fprintln(w, "      --style <s>           CSS style name, file path or content")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
}

// printTransformUsage prints usage for the transform command.
func printTransformUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svcfmt transform [files or directories...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format service descriptions: bullets, weekday/clock/age shorthand,")
	fmt.Fprintln(w, "and links for emails, URLs and phone numbers. Reads stdin when no")
	fmt.Fprintln(w, "files are given. Directories are scanned for .txt files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -i, --in-place            Rewrite files, keeping a .orig backup")
	fmt.Fprintln(w, "      --html                Write a standalone HTML review page")
	fmt.Fprintln(w, "      --title <s>           Review page title (default: file name)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printFormatUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svcfmt preview [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the lightweight HTML preview shown while typing. Nothing is")
	fmt.Fprintln(w, "expanded or linked; bullets are split onto their own lines.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Preview:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file")
	fmt.Fprintln(w, "      --sanitize            Strip unsafe markup")
	fmt.Fprintln(w, "      --watch               Re-render when the file changes")
	fmt.Fprintln(w)
	printFormatUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printSnippetUsage prints usage for the snippet command.
func printSnippetUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svcfmt snippet <name> [file] [flags]")
	fmt.Fprintln(w, "       svcfmt snippet --list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Insert a standard snippet before or after the text. Reads stdin")
	fmt.Fprintln(w, "when no file is given. Config files may add snippets.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Snippet:")
	fmt.Fprintln(w, "  -l, --list                List available snippets")
	fmt.Fprintln(w, "  -o, --output <path>       Output file")
	fmt.Fprintln(w, "  -i, --in-place            Rewrite the file, keeping a .orig backup")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printUndoUsage prints usage for the undo command.
func printUndoUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svcfmt undo <files...>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Restore files from the .orig backup written by --in-place.")
	fmt.Fprintln(w, "The backup is removed once restored.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	if !isCommand(args[0]) {
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "transform":
		printTransformUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "snippet":
		printSnippetUsage(env.Stdout)
	case "undo":
		printUndoUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: svcfmt version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: svcfmt help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	}
	return ExitSuccess
}
