package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. State file given with -f, else the default machine

import (
	"os"
	"strconv"
	"strings"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the GOENIGMA_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := env("REFLECTOR"); v != "" {
		cfg.Reflector = v
	}
	if v := env("ROTORS"); v != "" {
		cfg.Rotors = splitList(v, false)
	}
	if v := env("RINGS"); v != "" {
		cfg.Rings = splitList(v, true)
	}
	if v := env("POSITIONS"); v != "" {
		cfg.Positions = splitList(v, true)
	}
	if v := env("PLUGBOARD"); v != "" {
		cfg.Plugs = []string{v}
	}

	// State files
	if v := env("STATE"); v != "" {
		cfg.StateFile = v
	}
	if v := env("SAVE"); v != "" {
		cfg.SaveFile = v
	}

	// Output
	if v := envInt("GROUP"); v > 0 {
		cfg.Group = v
	}
	if envBool("SHOW_STATE") {
		cfg.ShowState = true
	}
	if v := envInt("VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func env(key string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + key))
}

func envInt(key string) int {
	v := env(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(env(key))
	return v == "1" || v == "true" || v == "yes"
}
