// Package session represents a single operator session at the machine,
// binding a configured machine with I/O endpoints, a logger and the
// message typed so far.
//
// Sessions decouple capabilities from concrete I/O sources.  A
// capability doesn't need to know whether it's reading from os.Stdin
// or a test buffer; it just uses the session's Reader/Writer.
package session

import (
	"io"
	"unicode"

	"goenigma/enigma"
	"goenigma/internal/metrics"
	"goenigma/util"
)

// Session encapsulates the runtime context for one run of the machine.
// Capabilities operate on sessions rather than raw machines, enabling
// clean testing and I/O abstraction.  A Session is not safe for
// concurrent use.
type Session struct {
	Machine *enigma.Machine
	Stdin   io.Reader
	Stdout  io.Writer
	Logger  *util.Logger
	Metrics *metrics.Collector

	start   enigma.State
	typed   []rune
	encoded []rune
}

// New creates a Session around m.  The machine's current setup becomes
// the start state that Rewind returns to.
func New(m *enigma.Machine, stdin io.Reader, stdout io.Writer, logger *util.Logger, mc *metrics.Collector) (*Session, error) {
	start, err := m.State()
	if err != nil {
		return nil, err
	}
	return &Session{
		Machine: m,
		Stdin:   stdin,
		Stdout:  stdout,
		Logger:  logger,
		Metrics: mc,
		start:   start,
	}, nil
}

// Start returns the state the session began in.
func (s *Session) Start() enigma.State { return s.start }

// Typed returns the letters pressed so far.
func (s *Session) Typed() string { return string(s.typed) }

// Encoded returns the lamps lit so far, one per typed letter.
func (s *Session) Encoded() string { return string(s.encoded) }

// ── Keyboard ─────────────────────────────────────────────────────────

// Press encodes one key and appends it to the typed message.  Upper
// case is folded.  A rejected key leaves the machine untouched.
func (s *Session) Press(r rune) (rune, error) {
	out, err := s.encode(unicode.ToLower(r))
	if err != nil {
		return 0, err
	}
	s.typed = append(s.typed, unicode.ToLower(r))
	s.encoded = append(s.encoded, out)
	return out, nil
}

// Backspace removes the last typed letter and turns the rotors back to
// where they stood before it was pressed.  It reports false when there
// is nothing to remove.
func (s *Session) Backspace() (bool, error) {
	n := len(s.typed)
	if n == 0 {
		return false, nil
	}
	if err := s.Machine.Undo(); err != nil {
		s.Metrics.RecordError(err.Error())
		return false, err
	}
	s.typed = s.typed[:n-1]
	s.encoded = s.encoded[:n-1]
	s.Metrics.Undo()
	s.Logger.Debug("backspace, windows %s", s.Machine.Windows())
	return true, nil
}

// Rewind restores the start state and clears both messages.
func (s *Session) Rewind() error {
	if err := s.Machine.Apply(s.start); err != nil {
		s.Metrics.RecordError(err.Error())
		return err
	}
	s.typed = s.typed[:0]
	s.encoded = s.encoded[:0]
	s.Metrics.Reset()
	s.Logger.Verbose("rewound to %s", s.Machine.Windows())
	return nil
}

// ── Messages ─────────────────────────────────────────────────────────

// Encode passes a whole message through the machine without recording
// it as typed.  White space is dropped and case folded; any other
// character rejects the message before a rotor moves.
func (s *Session) Encode(text string) (string, error) {
	letters, err := enigma.Letters(text)
	if err != nil {
		s.Metrics.RecordError(err.Error())
		return "", err
	}
	out := make([]rune, 0, len(letters))
	for _, r := range letters {
		c, err := s.encode(r)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	s.Metrics.MessageEncoded()
	return string(out), nil
}

func (s *Session) encode(r rune) (rune, error) {
	out, err := s.Machine.EncodeLetter(r)
	if err != nil {
		s.Metrics.RecordError(err.Error())
		return 0, err
	}
	st := s.Machine.LastStep()
	s.Metrics.LetterEncoded(st.Middle, st.Left)
	if st.DoubleStep() {
		s.Logger.Debug("%c -> %c  double step, windows %s", r, out, s.Machine.Windows())
	} else {
		s.Logger.Debug("%c -> %c  windows %s", r, out, s.Machine.Windows())
	}
	return out, nil
}
