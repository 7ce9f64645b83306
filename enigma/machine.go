package enigma

import (
	"strings"
	"unicode"

	enerr "goenigma/internal/errors"
)

// Machine composes plugboard, rotor bank and reflector into the full
// cipher.  Encoding and decoding are the same operation: a machine set
// up identically turns ciphertext back into plaintext.
type Machine struct {
	plugboard *Plugboard
	reflector *Reflector
	bank      Bank
	last      Step
}

// New returns a machine with an empty plugboard and no rotors or
// reflector.
func New() *Machine {
	return &Machine{plugboard: NewPlugboard()}
}

// NewDefault returns a machine with reflector B and rotors III, II, I
// from left to right, all windows at a.
func NewDefault() *Machine {
	m := New()
	// Catalog entries are known good.
	_ = m.SetReflector(ReflectorB)
	_ = m.SetLeftRotor(RotorIII)
	_ = m.SetMiddleRotor(RotorII)
	_ = m.SetRightRotor(RotorI)
	return m
}

// ── Setup ────────────────────────────────────────────────────────────

// SetReflector installs a reflector of type t.
func (m *Machine) SetReflector(t ReflectorType) error {
	r, err := NewReflector(t)
	if err != nil {
		return err
	}
	m.reflector = r
	return nil
}

// SetRotor installs a fresh rotor of type t in slot s.
func (m *Machine) SetRotor(s Slot, t RotorType) error {
	r, err := NewRotor(t)
	if err != nil {
		return err
	}
	return m.bank.Set(s, r)
}

// SetLeftRotor installs the left rotor.
func (m *Machine) SetLeftRotor(t RotorType) error { return m.SetRotor(Left, t) }

// SetMiddleRotor installs the middle rotor.
func (m *Machine) SetMiddleRotor(t RotorType) error { return m.SetRotor(Middle, t) }

// SetRightRotor installs the right rotor.
func (m *Machine) SetRightRotor(t RotorType) error { return m.SetRotor(Right, t) }

// SetRingSetting changes the ring setting of the rotor in slot s.
func (m *Machine) SetRingSetting(s Slot, v int) error {
	r, err := m.rotor(s)
	if err != nil {
		return err
	}
	if err := r.SetRingSetting(v); err != nil {
		return err
	}
	m.bank.Forget()
	return nil
}

// SetPosition turns the rotor in slot s to window index v.
func (m *Machine) SetPosition(s Slot, v int) error {
	r, err := m.rotor(s)
	if err != nil {
		return err
	}
	if err := r.SetPosition(v); err != nil {
		return err
	}
	m.bank.Forget()
	return nil
}

// SetWindows turns all three rotors so the given letters show, left to
// right.  Nothing moves unless all three letters are valid.
func (m *Machine) SetWindows(windows string) error {
	runes := []rune(strings.ToLower(windows))
	if len(runes) != 3 {
		return enerr.Config("positions", windows, "expected three window letters")
	}
	var idx [3]int
	for i, r := range runes {
		n, err := Index(r)
		if err != nil {
			return err
		}
		idx[i] = n
	}
	if err := m.Validate(); err != nil {
		return err
	}
	for _, s := range Slots() {
		_ = m.bank.rotors[s].SetPosition(idx[s])
	}
	m.bank.Forget()
	return nil
}

// Plugboard gives access to the plugboard for adding and removing
// cables.
func (m *Machine) Plugboard() *Plugboard { return m.plugboard }

// Reflector returns the installed reflector, or nil.
func (m *Machine) Reflector() *Reflector { return m.reflector }

// Rotor returns the rotor in slot s, or nil.
func (m *Machine) Rotor(s Slot) *Rotor { return m.bank.Rotor(s) }

func (m *Machine) rotor(s Slot) (*Rotor, error) {
	if !s.valid() {
		return nil, enerr.Config("rotors", s.String(), "unknown rotor slot")
	}
	r := m.bank.rotors[s]
	if r == nil {
		return nil, missing(s)
	}
	return r, nil
}

// Validate checks that the reflector and all three rotors are in
// place, naming the first missing component.
func (m *Machine) Validate() error {
	if m.reflector == nil {
		return &enerr.SetupError{Component: "reflector", Setter: "SetReflector"}
	}
	for _, s := range []Slot{Right, Middle, Left} {
		if m.bank.rotors[s] == nil {
			return missing(s)
		}
	}
	return nil
}

func missing(s Slot) error {
	setters := map[Slot]string{
		Left:   "SetLeftRotor",
		Middle: "SetMiddleRotor",
		Right:  "SetRightRotor",
	}
	return &enerr.SetupError{Component: s.String() + " rotor", Setter: setters[s]}
}

// ── Encoding ─────────────────────────────────────────────────────────

// EncodeLetter steps the rotors and passes r through the machine.
func (m *Machine) EncodeLetter(r rune) (rune, error) {
	i, err := Index(r)
	if err != nil {
		return 0, err
	}
	if err := m.Validate(); err != nil {
		return 0, err
	}
	m.last = m.bank.Step()
	return Letter(m.signal(i)), nil
}

// signal runs contact i through the full path with the rotors as they
// stand.
func (m *Machine) signal(i int) int {
	i = m.plugboard.swap(i)
	i = m.bank.forward(i)
	i = m.reflector.reflect(i)
	i = m.bank.backward(i)
	return m.plugboard.swap(i)
}

// EncodeMessage encodes every letter of text in order.  Whitespace is
// skipped and case is folded.  Any other character rejects the whole
// message before a rotor moves.
func (m *Machine) EncodeMessage(text string) (string, error) {
	letters, err := normalize(text)
	if err != nil {
		return "", err
	}
	if err := m.Validate(); err != nil {
		return "", err
	}
	out := make([]rune, len(letters))
	for n, i := range letters {
		m.last = m.bank.Step()
		out[n] = Letter(m.signal(i))
	}
	return string(out), nil
}

// Letters folds text to the machine alphabet the way EncodeMessage
// does: white space is dropped and upper case folded.  Any other
// character is an error.
func Letters(text string) (string, error) {
	idx, err := normalize(text)
	if err != nil {
		return "", err
	}
	out := make([]rune, len(idx))
	for n, i := range idx {
		out[n] = Letter(i)
	}
	return string(out), nil
}

func normalize(text string) ([]int, error) {
	letters := make([]int, 0, len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		i, err := Index(unicode.ToLower(r))
		if err != nil {
			return nil, err
		}
		letters = append(letters, i)
	}
	return letters, nil
}

// LastStep reports how the rotors moved on the most recent keypress.
func (m *Machine) LastStep() Step { return m.last }

// Undo turns the rotors back one keypress.
func (m *Machine) Undo() error {
	if err := m.Validate(); err != nil {
		return err
	}
	m.last = m.bank.Undo()
	return nil
}

// Reset turns every rotor back to window a.  Ring settings, rotor
// types and plugboard are kept.
func (m *Machine) Reset() error {
	if err := m.Validate(); err != nil {
		return err
	}
	m.bank.Reset()
	m.last = Step{}
	return nil
}

// Windows returns the window letters, left to right.
func (m *Machine) Windows() string { return m.bank.Windows() }

// Clone returns an independent machine in the same state, without undo
// history.
func (m *Machine) Clone() *Machine {
	c := New()
	if m.reflector != nil {
		c.reflector = m.reflector.Clone()
	}
	for _, s := range Slots() {
		if r := m.bank.rotors[s]; r != nil {
			c.bank.rotors[s] = r.Clone()
		}
	}
	c.plugboard.sockets = m.plugboard.sockets
	return c
}
