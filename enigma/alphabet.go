// Package enigma implements the cipher engine of a three-rotor
// electromechanical rotor machine: plugboard, rotors, reflector and the
// notch-driven stepping mechanism including the double-step anomaly.
//
// The engine works on the lowercase alphabet a–z.  Every position,
// offset and setting is an integer mod 26.  A Machine is not safe for
// concurrent use; callers that encode in parallel use separate machines,
// which never share state.
package enigma

import (
	"strconv"
	"strings"
	"unicode/utf8"

	enerr "goenigma/internal/errors"
)

// Alphabet is the ordered symbol set of the machine.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Size is the number of symbols in Alphabet.
const Size = len(Alphabet)

// mod normalizes n into [0, Size).
func mod(n int) int {
	n %= Size
	if n < 0 {
		n += Size
	}
	return n
}

// Index returns the alphabet index of r.
func Index(r rune) (int, error) {
	if r < 'a' || r > 'z' {
		return 0, enerr.Symbol(string(r), "expected a letter a-z")
	}
	return int(r - 'a'), nil
}

// Letter returns the alphabet symbol at i mod 26.
func Letter(i int) rune { return rune('a' + mod(i)) }

// ParseLetter validates that s is exactly one letter of the alphabet.
// Upper case is not accepted; callers fold case first.
func ParseLetter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, enerr.Symbol(s, "expected exactly one letter")
	}
	r, _ := utf8.DecodeRuneInString(s)
	if _, err := Index(r); err != nil {
		return 0, err
	}
	return r, nil
}

// ParseSetting converts a ring setting or window position into an
// index.  It accepts a single letter (either case) or an integer 0–25.
func ParseSetting(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if err := checkSetting("setting", n); err != nil {
			return 0, err
		}
		return n, nil
	}
	r, err := ParseLetter(strings.ToLower(s))
	if err != nil {
		return 0, &enerr.ConfigError{
			Field:   "setting",
			Value:   s,
			Message: "not a letter or a number 0-25",
			Hint:    "use a single letter A-Z or a number 0-25",
		}
	}
	return int(r - 'a'), nil
}

func checkSetting(field string, n int) error {
	if n < 0 || n >= Size {
		return &enerr.ConfigError{
			Field:   field,
			Value:   n,
			Message: "out of range 0-25",
			Hint:    "use a single letter A-Z or a number 0-25",
		}
	}
	return nil
}
