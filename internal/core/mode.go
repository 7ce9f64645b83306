// Package core is the orchestration layer.  It composes the machine,
// a session and a capability into complete operational modes and
// provides a builder that selects the right mode from a Config.
//
// Architecture layers (bottom → top):
//
//	enigma  →  session  →  capability  →  core  →  cmd (CLI)
//
// The builder in this package is the single dispatch point between
// parsed flags and the machine.
package core

import (
	"context"
	"io"
	"os"
)

// Mode represents a complete operational mode of goenigma (encode,
// interactive, or state).  Each mode owns its full lifecycle from
// machine setup to saving the end state.
type Mode interface {
	Run(ctx context.Context) error
}

// IO holds a mode's endpoints.  Nil fields default to os.Stdin,
// os.Stdout and os.Stderr; override them in tests for deterministic
// I/O.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (s IO) stdin() io.Reader {
	if s.Stdin != nil {
		return s.Stdin
	}
	return os.Stdin
}

func (s IO) stdout() io.Writer {
	if s.Stdout != nil {
		return s.Stdout
	}
	return os.Stdout
}

func (s IO) stderr() io.Writer {
	if s.Stderr != nil {
		return s.Stderr
	}
	return os.Stderr
}
