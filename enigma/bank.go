package enigma

import enerr "goenigma/internal/errors"

// Slot names a rotor position in the bank, left to right.
type Slot int

const (
	Left Slot = iota
	Middle
	Right
)

// Slots lists the bank positions from left to right.
func Slots() []Slot { return []Slot{Left, Middle, Right} }

func (s Slot) String() string {
	switch s {
	case Left:
		return "left"
	case Middle:
		return "middle"
	case Right:
		return "right"
	}
	return "unknown"
}

func (s Slot) valid() bool { return s >= Left && s <= Right }

// Step records which rotors besides the right one moved on a keypress.
type Step struct {
	Middle bool
	Left   bool
}

// DoubleStep reports whether the middle rotor moved on its own notch,
// carrying the left rotor with it.
func (s Step) DoubleStep() bool { return s.Left }

// maxJournal bounds the undo history.
const maxJournal = 1 << 16

// Bank holds the three rotors and drives the stepping mechanism.  The
// zero value is an empty bank; Step, Decrement and Undo leave an
// incomplete bank untouched and report no movement.
type Bank struct {
	rotors  [3]*Rotor
	journal []Step
}

// Rotor returns the rotor in slot s, or nil.
func (b *Bank) Rotor(s Slot) *Rotor {
	if !s.valid() {
		return nil
	}
	return b.rotors[s]
}

// Set places r in slot s and forgets the step history.
func (b *Bank) Set(s Slot, r *Rotor) error {
	if !s.valid() {
		return enerr.Config("rotors", s.String(), "unknown rotor slot")
	}
	b.rotors[s] = r
	b.Forget()
	return nil
}

// Forget clears the undo history.  Any explicit change of rotor state
// invalidates it.
func (b *Bank) Forget() { b.journal = b.journal[:0] }

// Complete reports whether every slot holds a rotor.
func (b *Bank) Complete() bool {
	return b.rotors[Left] != nil && b.rotors[Middle] != nil && b.rotors[Right] != nil
}

// Step advances the rotors for one keypress.
//
// Both notch conditions are read before anything moves.  The right
// rotor always steps.  A middle rotor sitting on its own notch steps
// together with the left rotor (the double step); otherwise it steps
// only when the right rotor's notch was engaged.
func (b *Bank) Step() Step {
	if !b.Complete() {
		return Step{}
	}
	left, middle, right := b.rotors[Left], b.rotors[Middle], b.rotors[Right]

	fromRight := right.NotchInPosition()
	fromMiddle := middle.NotchInPosition()

	var st Step
	right.Increment()
	switch {
	case fromMiddle:
		left.Increment()
		middle.Increment()
		st = Step{Middle: true, Left: true}
	case fromRight:
		middle.Increment()
		st = Step{Middle: true}
	}

	if len(b.journal) == maxJournal {
		b.journal = append(b.journal[:0], b.journal[maxJournal/2:]...)
	}
	b.journal = append(b.journal, st)
	return st
}

// Decrement turns the rotors back one keypress by the mirror rule: the
// right rotor steps back first, then the notches are judged on the
// positions reached by stepping back.
//
// Stepping forward is not injective (a middle rotor one past its notch
// may have arrived by double step or may have been standing there), so
// Decrement guesses the double step in that case.  Undo is exact while
// history is available.
func (b *Bank) Decrement() Step {
	if !b.Complete() {
		return Step{}
	}
	left, middle, right := b.rotors[Left], b.rotors[Middle], b.rotors[Right]

	right.Decrement()
	fromRight := right.NotchInPosition()

	middle.Decrement()
	fromMiddle := middle.NotchInPosition()
	middle.Increment()

	switch {
	case fromMiddle:
		left.Decrement()
		middle.Decrement()
		return Step{Middle: true, Left: true}
	case fromRight:
		middle.Decrement()
		return Step{Middle: true}
	}
	return Step{}
}

// Undo reverses the most recent Step.  Without history it falls back
// to Decrement.
func (b *Bank) Undo() Step {
	if !b.Complete() {
		return Step{}
	}
	n := len(b.journal)
	if n == 0 {
		return b.Decrement()
	}
	st := b.journal[n-1]
	b.journal = b.journal[:n-1]

	b.rotors[Right].Decrement()
	if st.Middle {
		b.rotors[Middle].Decrement()
	}
	if st.Left {
		b.rotors[Left].Decrement()
	}
	return st
}

// History is the number of steps Undo can reverse exactly.
func (b *Bank) History() int { return len(b.journal) }

// Windows returns the window letters, left to right.
func (b *Bank) Windows() string {
	out := make([]rune, 0, 3)
	for _, r := range b.rotors {
		if r == nil {
			out = append(out, '-')
			continue
		}
		out = append(out, r.Window())
	}
	return string(out)
}

// Reset turns every rotor so that the first letter of the alphabet
// shows in its window.
func (b *Bank) Reset() {
	for _, r := range b.rotors {
		if r != nil {
			_ = r.SetPosition(0)
		}
	}
	b.Forget()
}

func (b *Bank) forward(i int) int {
	i = b.rotors[Right].forward(i)
	i = b.rotors[Middle].forward(i)
	return b.rotors[Left].forward(i)
}

func (b *Bank) backward(i int) int {
	i = b.rotors[Left].backward(i)
	i = b.rotors[Middle].backward(i)
	return b.rotors[Right].backward(i)
}
