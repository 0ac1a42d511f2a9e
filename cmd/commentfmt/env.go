package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-commentfmt/internal/assets"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, the environment and asset loading.
type Environment struct {
	Now         func() time.Time
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Getenv      func(string) string
	AssetLoader assets.AssetLoader // nil builds a resolver from config
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}
