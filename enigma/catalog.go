package enigma

import (
	"strconv"
	"strings"

	enerr "goenigma/internal/errors"
)

// ── Rotor types ──────────────────────────────────────────────────────

// RotorType identifies one of the supported rotor wirings.
type RotorType int

const (
	RotorI RotorType = iota
	RotorII
	RotorIII
	RotorIV
	RotorV
)

type rotorSpec struct {
	name   string
	wiring string
	notch  rune // window letter at which the notch is engaged
}

// Tables are plain strings; every rotor builds its own Map from them.
var rotorSpecs = [...]rotorSpec{ //nolint:gochecknoglobals
	RotorI:   {"I", "ekmflgdqvzntowyhxuspaibrcj", 'q'},
	RotorII:  {"II", "ajdksiruxblhwtmcqgznpyfvoe", 'e'},
	RotorIII: {"III", "bdfhjlcprtxvznyeiwgakmusqo", 'v'},
	RotorIV:  {"IV", "esovpzjayquirhxlnftgkdcmwb", 'j'},
	RotorV:   {"V", "vzbrgityupsdnhlxawmjqofeck", 'z'},
}

// RotorTypes lists every supported rotor type in catalog order.
func RotorTypes() []RotorType {
	out := make([]RotorType, len(rotorSpecs))
	for i := range rotorSpecs {
		out[i] = RotorType(i)
	}
	return out
}

func (t RotorType) valid() bool { return t >= 0 && int(t) < len(rotorSpecs) }

func (t RotorType) String() string {
	if !t.valid() {
		return "RotorType(" + strconv.Itoa(int(t)) + ")"
	}
	return rotorSpecs[t].name
}

// Notch is the window letter at which the rotor carries its left
// neighbour on the next keypress.
func (t RotorType) Notch() rune {
	if !t.valid() {
		return 0
	}
	return rotorSpecs[t].notch
}

// ParseRotorType accepts the roman numeral of a rotor, in either case.
func ParseRotorType(s string) (RotorType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, spec := range rotorSpecs {
		if spec.name == name {
			return RotorType(i), nil
		}
	}
	return 0, &enerr.ConfigError{
		Field:   "rotors",
		Value:   s,
		Message: "unknown rotor type",
		Hint:    "choose from " + strings.Join(rotorNames(), ", "),
	}
}

func rotorNames() []string {
	names := make([]string, len(rotorSpecs))
	for i, spec := range rotorSpecs {
		names[i] = spec.name
	}
	return names
}

// ── Reflector types ──────────────────────────────────────────────────

// ReflectorType identifies one of the supported reflector wirings.
type ReflectorType int

const (
	ReflectorB ReflectorType = iota
	ReflectorC
)

type reflectorSpec struct {
	name   string
	wiring string
}

var reflectorSpecs = [...]reflectorSpec{ //nolint:gochecknoglobals
	ReflectorB: {"B", "yruhqsldpxngokmiebfzcwvjat"},
	ReflectorC: {"C", "fvpjiaoyedrzxwgctkuqsbnmhl"},
}

// ReflectorTypes lists every supported reflector type.
func ReflectorTypes() []ReflectorType {
	out := make([]ReflectorType, len(reflectorSpecs))
	for i := range reflectorSpecs {
		out[i] = ReflectorType(i)
	}
	return out
}

func (t ReflectorType) valid() bool { return t >= 0 && int(t) < len(reflectorSpecs) }

func (t ReflectorType) String() string {
	if !t.valid() {
		return "ReflectorType(" + strconv.Itoa(int(t)) + ")"
	}
	return reflectorSpecs[t].name
}

// ParseReflectorType accepts "B" or "C", in either case.
func ParseReflectorType(s string) (ReflectorType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, spec := range reflectorSpecs {
		if spec.name == name {
			return ReflectorType(i), nil
		}
	}
	return 0, &enerr.ConfigError{
		Field:   "reflector",
		Value:   s,
		Message: "unknown reflector type",
		Hint:    "choose B or C",
	}
}
