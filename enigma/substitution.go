package enigma

import (
	"strings"

	enerr "goenigma/internal/errors"
)

// Substitution is implemented by every element the signal passes
// through.  Switch is the direction toward the reflector, SwitchReverse
// the way back.
type Substitution interface {
	Switch(r rune) (rune, error)
	SwitchReverse(r rune) (rune, error)
}

const unset = -1

// Map is an injective letter mapping.  A letter without an entry maps
// to itself.  A Map never changes after construction.
type Map struct {
	fwd [Size]int
	rev [Size]int
}

func emptyMap() *Map {
	m := &Map{}
	for i := range m.fwd {
		m.fwd[i] = unset
		m.rev[i] = unset
	}
	return m
}

// IdentityMap returns a fresh map with an explicit entry for every
// letter pointing at itself.
func IdentityMap() *Map {
	m := emptyMap()
	for i := range m.fwd {
		m.fwd[i] = i
		m.rev[i] = i
	}
	return m
}

// IsValid reports whether table can back a Map: every key and value is
// in the alphabet and no value appears twice.
func IsValid(table map[rune]rune) bool {
	var seen [Size]bool
	for k, v := range table {
		if _, err := Index(k); err != nil {
			return false
		}
		vi, err := Index(v)
		if err != nil {
			return false
		}
		if seen[vi] {
			return false
		}
		seen[vi] = true
	}
	return true
}

// NewMap builds a Map from a (possibly partial) table.
func NewMap(table map[rune]rune) (*Map, error) {
	if !IsValid(table) {
		return nil, &enerr.ConfigError{
			Field:   "lettermap",
			Message: "keys and values must be letters a-z with no repeated value",
		}
	}
	m := emptyMap()
	for k, v := range table {
		ki, vi := int(k-'a'), int(v-'a')
		m.fwd[ki] = vi
		m.rev[vi] = ki
	}
	return m, nil
}

// ParseMap builds a total Map from a 26-letter wiring string, where the
// i-th letter is the image of the i-th letter of the alphabet.
func ParseMap(wiring string) (*Map, error) {
	if len(wiring) != Size {
		return nil, &enerr.ConfigError{
			Field:   "wiring",
			Value:   wiring,
			Message: "must list exactly 26 letters",
		}
	}
	table := make(map[rune]rune, Size)
	for i, r := range wiring {
		table[Letter(i)] = r
	}
	return NewMap(table)
}

// Switch returns the image of r, or r itself when it has no entry.
func (m *Map) Switch(r rune) (rune, error) {
	i, err := Index(r)
	if err != nil {
		return 0, err
	}
	return Letter(m.forward(i)), nil
}

// SwitchReverse applies the inverse mapping under the same fallback.
func (m *Map) SwitchReverse(r rune) (rune, error) {
	i, err := Index(r)
	if err != nil {
		return 0, err
	}
	return Letter(m.backward(i)), nil
}

func (m *Map) forward(i int) int {
	if v := m.fwd[i]; v != unset {
		return v
	}
	return i
}

func (m *Map) backward(i int) int {
	if v := m.rev[i]; v != unset {
		return v
	}
	return i
}

// Invert returns a new map with keys and values swapped.
func (m *Map) Invert() *Map {
	inv := &Map{fwd: m.rev, rev: m.fwd}
	return inv
}

// Len is the number of explicit entries.
func (m *Map) Len() int {
	n := 0
	for _, v := range m.fwd {
		if v != unset {
			n++
		}
	}
	return n
}

// Total reports whether every letter has an explicit entry.
func (m *Map) Total() bool { return m.Len() == Size }

// SelfInverse reports whether applying the map twice is the identity.
func (m *Map) SelfInverse() bool {
	for i := 0; i < Size; i++ {
		if m.forward(m.forward(i)) != i {
			return false
		}
	}
	return true
}

// Table returns a copy of the explicit entries.
func (m *Map) Table() map[rune]rune {
	out := make(map[rune]rune, Size)
	for i, v := range m.fwd {
		if v != unset {
			out[Letter(i)] = Letter(v)
		}
	}
	return out
}

// SwitchSequence switches every letter of s in turn.
func (m *Map) SwitchSequence(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		out, err := m.Switch(r)
		if err != nil {
			return "", err
		}
		b.WriteRune(out)
	}
	return b.String(), nil
}

// SwitchLetter is the string entry point to any Substitution: s must be
// exactly one letter.
func SwitchLetter(sub Substitution, s string) (string, error) {
	r, err := ParseLetter(s)
	if err != nil {
		return "", err
	}
	out, err := sub.Switch(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
