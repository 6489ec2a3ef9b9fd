package main

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// Environment holds injectable dependencies for testability.
// Includes I/O and logging.
type Environment struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger // nil = console logger on Stderr, level from flags
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
