package enigma

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/blake2b"

	enerr "goenigma/internal/errors"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals

// State is the complete, serializable setup of a machine: reflector,
// each rotor's type, ring setting and window letter (left to right),
// and the plugboard cables.
type State struct {
	Reflector string       `yaml:"reflector" json:"reflector" validate:"required,oneof=B C"`
	Rotors    []RotorState `yaml:"rotors" json:"rotors" validate:"len=3,dive"`
	Plugboard []string     `yaml:"plugboard,omitempty" json:"plugboard,omitempty" validate:"max=13,dive,len=2,alpha"`
}

// RotorState is one rotor's part of a State.
type RotorState struct {
	Type     string `yaml:"type" json:"type" validate:"required,oneof=I II III IV V"`
	Ring     string `yaml:"ring" json:"ring" validate:"required,len=1,alpha"`
	Position string `yaml:"position" json:"position" validate:"required,len=1,alpha"`
}

// DefaultState is the setup of NewDefault.
func DefaultState() State {
	return State{
		Reflector: "B",
		Rotors: []RotorState{
			{Type: "III", Ring: "A", Position: "A"},
			{Type: "II", Ring: "A", Position: "A"},
			{Type: "I", Ring: "A", Position: "A"},
		},
	}
}

// Normalize returns a copy in canonical form: upper-case tags and
// letters, cables sorted with their letters in order.
func (s State) Normalize() State {
	out := State{Reflector: strings.ToUpper(strings.TrimSpace(s.Reflector))}
	for _, r := range s.Rotors {
		out.Rotors = append(out.Rotors, RotorState{
			Type:     strings.ToUpper(strings.TrimSpace(r.Type)),
			Ring:     strings.ToUpper(strings.TrimSpace(r.Ring)),
			Position: strings.ToUpper(strings.TrimSpace(r.Position)),
		})
	}
	for _, p := range s.Plugboard {
		p = strings.ToUpper(strings.TrimSpace(p))
		if len(p) == 2 && p[1] < p[0] {
			p = string([]byte{p[1], p[0]})
		}
		out.Plugboard = append(out.Plugboard, p)
	}
	sort.Strings(out.Plugboard)
	return out
}

// Validate checks the state's shape and that the cables are disjoint.
func (s State) Validate() error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	_, err := s.build()
	return err
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return enerr.Config("state", nil, err.Error())
	}
	fe := verrs[0]
	field := "state." + strings.ToLower(strings.TrimPrefix(fe.Namespace(), "State."))
	msg := fmt.Sprintf("failed %q rule", fe.Tag())
	if fe.Param() != "" {
		msg = fmt.Sprintf("failed %q rule (%s)", fe.Tag(), fe.Param())
	}
	var value interface{}
	if v := fmt.Sprint(fe.Value()); v != "" {
		value = v
	}
	return &enerr.ConfigError{
		Field:   field,
		Value:   value,
		Message: msg,
		Hint:    "reflector B|C; three rotors of type I-V with one-letter ring and position; up to 13 two-letter cables",
	}
}

// build assembles a fresh machine from a validated-shape state.
func (s State) build() (*Machine, error) {
	m := New()
	rt, err := ParseReflectorType(s.Reflector)
	if err != nil {
		return nil, err
	}
	if err := m.SetReflector(rt); err != nil {
		return nil, err
	}
	for i, rs := range s.Rotors {
		slot := Slot(i)
		t, err := ParseRotorType(rs.Type)
		if err != nil {
			return nil, err
		}
		if err := m.SetRotor(slot, t); err != nil {
			return nil, err
		}
		ring, err := ParseSetting(rs.Ring)
		if err != nil {
			return nil, err
		}
		pos, err := ParseSetting(rs.Position)
		if err != nil {
			return nil, err
		}
		if err := m.SetRingSetting(slot, ring); err != nil {
			return nil, err
		}
		if err := m.SetPosition(slot, pos); err != nil {
			return nil, err
		}
	}
	for _, c := range s.Plugboard {
		p, err := ParsePair(c)
		if err != nil {
			return nil, err
		}
		if err := m.plugboard.AddPair(p.A, p.B); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Fingerprint is a short digest of the canonical state.  Two machines
// with equal fingerprints encode identically.
func (s State) Fingerprint() string {
	n := s.Normalize()
	var b strings.Builder
	b.WriteString(n.Reflector)
	for _, r := range n.Rotors {
		fmt.Fprintf(&b, "|%s:%s:%s", r.Type, r.Ring, r.Position)
	}
	b.WriteString("|" + strings.Join(n.Plugboard, ","))
	sum := blake2b.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:8])
}

// NewFromState builds a machine from a saved state.
func NewFromState(s State) (*Machine, error) {
	m := New()
	if err := m.Apply(s); err != nil {
		return nil, err
	}
	return m, nil
}

// State snapshots the machine.  It fails while the setup is incomplete.
func (m *Machine) State() (State, error) {
	if err := m.Validate(); err != nil {
		return State{}, err
	}
	st := State{Reflector: m.reflector.Type().String()}
	for _, s := range Slots() {
		r := m.bank.rotors[s]
		st.Rotors = append(st.Rotors, RotorState{
			Type:     r.Type().String(),
			Ring:     strings.ToUpper(string(Letter(r.RingSetting()))),
			Position: strings.ToUpper(string(r.Window())),
		})
	}
	for _, p := range m.plugboard.Pairs() {
		st.Plugboard = append(st.Plugboard, strings.ToUpper(p.String()))
	}
	return st, nil
}

// Apply replaces the machine's whole setup with s.  On error the
// machine is left as it was.
func (m *Machine) Apply(s State) error {
	s = s.Normalize()
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	n, err := s.build()
	if err != nil {
		return err
	}
	m.reflector = n.reflector
	m.bank = n.bank
	m.plugboard.sockets = n.plugboard.sockets
	m.last = Step{}
	return nil
}
