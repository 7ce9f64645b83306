// Package config defines the runtime configuration for goenigma and
// provides helpers for parsing rotor triples and plugboard cables.
package config

import (
	"fmt"
	"strings"

	"goenigma/enigma"
	enerr "goenigma/internal/errors"
)

// Config holds every tuneable for a single goenigma run.  Machine
// fields left empty fall back to the base state (a loaded state file
// or the default machine).
type Config struct {
	// ── Machine ──────────────────────────────────────────────────────
	Reflector string   // -u: B or C
	Rotors    []string // -r: rotor types, left to right
	Rings     []string // -s: ring settings, letters or 0-25
	Positions []string // -p: window letters, letters or 0-25
	Plugs     []string // -P: cables such as "hz"

	// ── State files ──────────────────────────────────────────────────
	StateFile string // -f: load setup from YAML
	SaveFile  string // -o: save the end state as YAML

	// ── Input ────────────────────────────────────────────────────────
	Text        string // positional message; empty → read stdin
	Interactive bool

	// ── Output ───────────────────────────────────────────────────────
	Group     int // letters per output group, 0 = ungrouped
	ShowState bool
	DryRun    bool
	Verbose   int
}

// ── List helpers ─────────────────────────────────────────────────────

// splitList breaks a flag value on commas, slashes and white space.
// With spread set, a single word of exactly three letters ("KDO") is
// split into its letters.
func splitList(s string, spread bool) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '/'
	})
	if spread && len(fields) == 1 && len(fields[0]) == 3 && isLetters(fields[0]) {
		w := fields[0]
		return []string{w[:1], w[1:2], w[2:]}
	}
	return fields
}

func isLetters(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}

// ParseTriple accepts "III,II,I", "A B C", "KDO" or "0,3,25" and
// returns the three fields, left to right.
func ParseTriple(field, spec string) ([]string, error) {
	parts := splitList(spec, field != "rotors")
	if len(parts) != 3 {
		return nil, &enerr.ConfigError{
			Field:   field,
			Value:   spec,
			Message: fmt.Sprintf("expected 3 values (left, middle, right), got %d", len(parts)),
			Hint:    "separate with commas, e.g. --" + field + "=" + tripleExample(field),
		}
	}
	return parts, nil
}

func tripleExample(field string) string {
	if field == "rotors" {
		return "III,II,I"
	}
	return "A,A,A"
}

// ParsePlugs reads cables written as "hz ab", "HZ,AB" or "h-z" and
// returns them in lower case.  Letters must not repeat across cables.
func ParsePlugs(specs ...string) ([]string, error) {
	var out []string
	var used [enigma.Size]bool
	for _, spec := range specs {
		for _, f := range strings.FieldsFunc(spec, func(r rune) bool { return r == ',' || r == ' ' }) {
			p, err := enigma.ParsePair(f)
			if err != nil {
				return nil, &enerr.ConfigError{
					Field:   "plug",
					Value:   f,
					Message: "a cable is two letters",
					Hint:    "e.g. --plug=HZ,AB",
				}
			}
			if p.A == p.B {
				return nil, &enerr.ConfigError{
					Field:   "plug",
					Value:   f,
					Message: "a letter cannot be cabled to itself",
				}
			}
			for _, r := range []rune{p.A, p.B} {
				if used[r-'a'] {
					return nil, &enerr.ConfigError{
						Field:   "plug",
						Value:   f,
						Message: fmt.Sprintf("letter %c is already cabled", r),
						Hint:    "each letter can take one cable",
					}
				}
				used[r-'a'] = true
			}
			out = append(out, p.String())
		}
	}
	if len(out) > enigma.MaxPairs {
		return nil, &enerr.ConfigError{
			Field:   "plug",
			Value:   len(out),
			Message: fmt.Sprintf("at most %d cables fit the board", enigma.MaxPairs),
		}
	}
	return out, nil
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
// Machine fields are checked one by one; cable clashes with a loaded
// state are caught by Resolve.
func (c *Config) Validate() error {
	if c.Reflector != "" {
		if _, err := enigma.ParseReflectorType(c.Reflector); err != nil {
			return err
		}
	}
	if len(c.Rotors) > 0 {
		if len(c.Rotors) != 3 {
			return tripleError("rotors", c.Rotors)
		}
		for _, r := range c.Rotors {
			if _, err := enigma.ParseRotorType(r); err != nil {
				return err
			}
		}
	}
	settings := []struct {
		field string
		vals  []string
	}{
		{"rings", c.Rings},
		{"positions", c.Positions},
	}
	for _, s := range settings {
		field, vals := s.field, s.vals
		if len(vals) == 0 {
			continue
		}
		if len(vals) != 3 {
			return tripleError(field, vals)
		}
		for _, v := range vals {
			if _, err := enigma.ParseSetting(v); err != nil {
				return &enerr.ConfigError{
					Field:   field,
					Value:   v,
					Message: "not a letter or a number 0-25",
					Hint:    "use a single letter A-Z or a number 0-25",
				}
			}
		}
	}
	if _, err := ParsePlugs(c.Plugs...); err != nil {
		return err
	}

	if c.Group < 0 || c.Group > MaxGroup {
		return &enerr.ConfigError{
			Field:   "group",
			Value:   c.Group,
			Message: fmt.Sprintf("must be between 0 and %d", MaxGroup),
			Hint:    fmt.Sprintf("0 prints the cipher text ungrouped; %d is customary", CustomaryGroup),
		}
	}
	if c.Interactive && c.Text != "" {
		return &enerr.ConfigError{
			Field:   "interactive",
			Message: "a message argument cannot be combined with interactive mode",
			Hint:    "type the message at the keyboard instead",
		}
	}
	if c.Interactive && c.DryRun {
		return &enerr.ConfigError{
			Field:   "dry-run",
			Message: "dry-run and interactive mode are mutually exclusive",
		}
	}
	return nil
}

func tripleError(field string, vals []string) error {
	return &enerr.ConfigError{
		Field:   field,
		Value:   strings.Join(vals, ","),
		Message: fmt.Sprintf("expected 3 values (left, middle, right), got %d", len(vals)),
		Hint:    "e.g. --" + field + "=" + tripleExample(field),
	}
}

// ── State resolution ─────────────────────────────────────────────────

// Resolve overlays the machine fields of c onto base and returns the
// resulting canonical state.  base is not modified.
func (c *Config) Resolve(base enigma.State) (enigma.State, error) {
	if err := c.Validate(); err != nil {
		return enigma.State{}, err
	}
	st := base.Normalize()
	if len(st.Rotors) != 3 {
		st.Rotors = enigma.DefaultState().Rotors
	}

	if c.Reflector != "" {
		st.Reflector = c.Reflector
	}
	for i := range st.Rotors {
		if len(c.Rotors) == 3 {
			st.Rotors[i].Type = c.Rotors[i]
		}
		if len(c.Rings) == 3 {
			st.Rotors[i].Ring = settingLetter(c.Rings[i])
		}
		if len(c.Positions) == 3 {
			st.Rotors[i].Position = settingLetter(c.Positions[i])
		}
	}
	if len(c.Plugs) > 0 {
		plugs, _ := ParsePlugs(c.Plugs...)
		st.Plugboard = plugs
	}

	st = st.Normalize()
	if err := st.Validate(); err != nil {
		return enigma.State{}, err
	}
	return st, nil
}

// settingLetter turns a validated ring or window value into its letter.
func settingLetter(v string) string {
	n, _ := enigma.ParseSetting(v)
	return strings.ToUpper(string(enigma.Letter(n)))
}
