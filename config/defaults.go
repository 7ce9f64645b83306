package config

import "os"

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags, state file handling, and environment variable
// loading.  The default machine itself is enigma.DefaultState.

const (
	// DefaultGroup prints cipher text without grouping.
	DefaultGroup = 0

	// CustomaryGroup is the five-letter grouping of radio traffic.
	CustomaryGroup = 5

	// MaxGroup caps the group size; anything longer is unreadable.
	MaxGroup = 64

	// DefaultStateFileMode keeps saved key settings private to the user.
	DefaultStateFileMode os.FileMode = 0o600

	// EnvPrefix is prepended to every supported environment variable.
	EnvPrefix = "GOENIGMA_"
)
