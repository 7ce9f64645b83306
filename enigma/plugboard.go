package enigma

import (
	"fmt"
	"strings"

	enerr "goenigma/internal/errors"
)

// MaxPairs is the number of cables a full plugboard can hold.
const MaxPairs = Size / 2

// Pair is one plugboard cable, stored with A < B.
type Pair struct {
	A, B rune
}

// NewPair orders a and b.
func NewPair(a, b rune) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// ParsePair reads a cable written as two letters ("hz", "HZ", "h-z").
func ParsePair(s string) (Pair, error) {
	letters := strings.ToLower(strings.NewReplacer("-", "", ":", "", " ", "").Replace(s))
	if len(letters) != 2 {
		return Pair{}, enerr.Symbol(s, "a plugboard pair is two letters")
	}
	a, err := ParseLetter(letters[:1])
	if err != nil {
		return Pair{}, err
	}
	b, err := ParseLetter(letters[1:])
	if err != nil {
		return Pair{}, err
	}
	return NewPair(a, b), nil
}

func (p Pair) String() string { return string([]rune{p.A, p.B}) }

// Plugboard swaps letters in reciprocal pairs before and after the
// rotors.  The zero value is not usable; call NewPlugboard.
type Plugboard struct {
	sockets [Size]int
}

// NewPlugboard returns an empty plugboard.
func NewPlugboard() *Plugboard {
	p := &Plugboard{}
	p.Clear()
	return p
}

// Clear pulls every cable.
func (p *Plugboard) Clear() {
	for i := range p.sockets {
		p.sockets[i] = unset
	}
}

// AddPair plugs a cable between a and b.  The board is unchanged when
// either socket is taken.
func (p *Plugboard) AddPair(a, b rune) error {
	ai, err := Index(a)
	if err != nil {
		return err
	}
	bi, err := Index(b)
	if err != nil {
		return err
	}
	letters := string([]rune{a, b})
	if ai == bi {
		return enerr.Plug("add", letters, enerr.ErrSelfPair)
	}
	for _, i := range []int{ai, bi} {
		if other := p.sockets[i]; other != unset {
			return enerr.Plug("add", letters,
				fmt.Errorf("%w: %c is plugged to %c", enerr.ErrSocketOccupied, Letter(i), Letter(other)))
		}
	}
	p.sockets[ai] = bi
	p.sockets[bi] = ai
	return nil
}

// RemovePair pulls the cable plugged into r.
func (p *Plugboard) RemovePair(r rune) error {
	i, err := Index(r)
	if err != nil {
		return err
	}
	other := p.sockets[i]
	if other == unset {
		return enerr.Plug("remove", string(r), enerr.ErrNoPairing)
	}
	p.sockets[i] = unset
	p.sockets[other] = unset
	return nil
}

// Partner returns the letter r is cabled to.
func (p *Plugboard) Partner(r rune) (rune, bool) {
	i, err := Index(r)
	if err != nil || p.sockets[i] == unset {
		return 0, false
	}
	return Letter(p.sockets[i]), true
}

// Pairs lists each cable once, ordered by its first letter.
func (p *Plugboard) Pairs() []Pair {
	var out []Pair
	for i, other := range p.sockets {
		if other != unset && i < other {
			out = append(out, Pair{A: Letter(i), B: Letter(other)})
		}
	}
	return out
}

// Len is the number of cables plugged.
func (p *Plugboard) Len() int { return len(p.Pairs()) }

// Switch swaps r with its partner, if any.
func (p *Plugboard) Switch(r rune) (rune, error) {
	i, err := Index(r)
	if err != nil {
		return 0, err
	}
	return Letter(p.swap(i)), nil
}

// SwitchReverse is Switch; cables work the same way in both directions.
func (p *Plugboard) SwitchReverse(r rune) (rune, error) { return p.Switch(r) }

func (p *Plugboard) swap(i int) int {
	if other := p.sockets[i]; other != unset {
		return other
	}
	return i
}

// Map returns the current pairings as an immutable Map.
func (p *Plugboard) Map() *Map {
	m := emptyMap()
	for i, other := range p.sockets {
		if other != unset {
			m.fwd[i] = other
			m.rev[other] = i
		}
	}
	return m
}
