package enigma

import enerr "goenigma/internal/errors"

// Reflector turns the signal back through the rotors.  It never rotates
// and pairs letters, which is why no letter ever encodes to itself.
type Reflector struct {
	kind   ReflectorType
	wiring *Map
}

// NewReflector builds a reflector of the given type.
func NewReflector(t ReflectorType) (*Reflector, error) {
	if !t.valid() {
		return nil, enerr.Config("reflector", t.String(), "unknown reflector type")
	}
	wiring, err := ParseMap(reflectorSpecs[t].wiring)
	if err != nil {
		return nil, err
	}
	return &Reflector{kind: t, wiring: wiring}, nil
}

// Type returns the reflector's catalog tag.
func (r *Reflector) Type() ReflectorType { return r.kind }

// Switch reflects c.
func (r *Reflector) Switch(c rune) (rune, error) { return r.wiring.Switch(c) }

// SwitchReverse is Switch: the wiring is its own inverse.
func (r *Reflector) SwitchReverse(c rune) (rune, error) { return r.Switch(c) }

func (r *Reflector) reflect(i int) int { return r.wiring.forward(i) }

// Clone returns an independent reflector of the same type.
func (r *Reflector) Clone() *Reflector {
	c, _ := NewReflector(r.kind)
	return c
}

// Equal reports whether two reflectors have the same type.
func (r *Reflector) Equal(o *Reflector) bool {
	return r != nil && o != nil && r.kind == o.kind
}
