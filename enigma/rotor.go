package enigma

import enerr "goenigma/internal/errors"

// Rotor is a wired substitution that rotates one step per keypress
// (when its turn comes) and carries an alphabet ring that can be turned
// against the wiring core.
//
// position is the rotation of the wiring core.  The ring adds ring
// positions on top, so the letter an operator reads in the window is
// position + ring, and the notch sits on the ring, not the core.
type Rotor struct {
	kind     RotorType
	wiring   *Map
	notch    int
	position int
	ring     int
}

// NewRotor builds a rotor of the given type at position 0 with ring
// setting 0.
func NewRotor(t RotorType) (*Rotor, error) {
	if !t.valid() {
		return nil, enerr.Config("rotors", t.String(), "unknown rotor type")
	}
	spec := rotorSpecs[t]
	wiring, err := ParseMap(spec.wiring)
	if err != nil {
		return nil, err
	}
	return &Rotor{kind: t, wiring: wiring, notch: int(spec.notch - 'a')}, nil
}

// Type returns the rotor's catalog tag.
func (r *Rotor) Type() RotorType { return r.kind }

// ── Signal path ──────────────────────────────────────────────────────

// forward carries contact i from the entry side toward the reflector.
// The signal enters the core rotated by the core offset, passes the
// wiring, and leaves with the same rotation undone.
func (r *Rotor) forward(i int) int {
	shift := r.coreOffset()
	return mod(r.wiring.forward(mod(i+shift)) - shift)
}

// backward is the exact inverse of forward for the current rotation.
func (r *Rotor) backward(i int) int {
	shift := r.coreOffset()
	return mod(r.wiring.backward(mod(i+shift)) - shift)
}

// coreOffset is the window rotation less the ring setting: turning the
// ring moves the window letter and notch without moving the wiring.
func (r *Rotor) coreOffset() int { return mod(r.window() - r.ring) }

// Switch passes c through the rotor toward the reflector.
func (r *Rotor) Switch(c rune) (rune, error) {
	i, err := Index(c)
	if err != nil {
		return 0, err
	}
	return Letter(r.forward(i)), nil
}

// SwitchReverse passes c through the rotor on the way back.
func (r *Rotor) SwitchReverse(c rune) (rune, error) {
	i, err := Index(c)
	if err != nil {
		return 0, err
	}
	return Letter(r.backward(i)), nil
}

// ── Rotation ─────────────────────────────────────────────────────────

// NotchInPosition reports whether the rotor will carry its left
// neighbour on its next step.
func (r *Rotor) NotchInPosition() bool { return r.window() == r.notch }

// Increment advances the rotor one position.
func (r *Rotor) Increment() { r.position = mod(r.position + 1) }

// Decrement turns the rotor back one position.
func (r *Rotor) Decrement() { r.position = mod(r.position - 1) }

func (r *Rotor) window() int { return mod(r.position + r.ring) }

// Position returns the internal core rotation, 0–25.
func (r *Rotor) Position() int { return r.position }

// RingSetting returns the ring setting, 0–25.
func (r *Rotor) RingSetting() int { return r.ring }

// Window returns the letter visible in the machine's window.
func (r *Rotor) Window() rune { return Letter(r.window()) }

// WindowIndex returns the alphabet index of Window.
func (r *Rotor) WindowIndex() int { return r.window() }

// SetRingSetting changes the ring setting and keeps the window letter
// where it was by re-deriving the core position.
func (r *Rotor) SetRingSetting(v int) error {
	if err := checkSetting("rings", v); err != nil {
		return err
	}
	w := r.window()
	r.ring = v
	r.position = mod(w - v)
	return nil
}

// SetPosition turns the rotor so that window index v shows.
func (r *Rotor) SetPosition(v int) error {
	if err := checkSetting("positions", v); err != nil {
		return err
	}
	r.position = mod(v - r.ring)
	return nil
}

// Clone returns an independent copy of the rotor in the same state.
func (r *Rotor) Clone() *Rotor {
	c := *r
	return &c
}
