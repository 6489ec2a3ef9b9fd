package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// commands lists the subcommands runMain dispatches.
var commands = []string{"transform", "preview", "snippet", "undo", "version", "help"}

// isCommand reports whether name is a known subcommand.
func isCommand(name string) bool {
	return slices.Contains(commands, name)
}

// runMain dispatches to a subcommand and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	warnUnknownEnvVars(env.Stderr)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	var err error
	switch cmd {
	case "transform":
		err = runTransformCmd(ctx, rest, env)
	case "preview":
		err = runPreviewCmd(ctx, rest, env)
	case "snippet":
		err = runSnippetCmd(rest, env)
	case "undo":
		err = runUndoCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "go-svcfmt %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// newLoggerFor returns env.Logger when injected, else a console logger on
// env.Stderr at the level chosen by flags and SVCFMT_LOG_LEVEL.
func newLoggerFor(env *Environment, common commonFlags, envCfg *envConfig) (*zap.Logger, error) {
	if env.Logger != nil {
		return env.Logger, nil
	}
	level, err := resolveLogLevel(common, envCfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return newLogger(env.Stderr, level), nil
}
