package core

import (
	"context"
	"fmt"
	"io"
	"strings"

	"goenigma/config"
	"goenigma/enigma"
	"goenigma/internal/capability"
	"goenigma/internal/metrics"
	"goenigma/internal/session"
	"goenigma/util"
)

// machineMode is the part shared by modes that run a capability
// against the machine: session setup, saving and reporting the end
// state.
type machineMode struct {
	Machine    *enigma.Machine
	Capability capability.Capability
	SaveFile   string // write the end state here when set
	ShowState  bool   // print the end state to stderr
	Logger     *util.Logger
	Metrics    *metrics.Collector
	IO
}

func (b *machineMode) run(ctx context.Context, input io.Reader) error {
	sess, err := session.New(b.Machine, input, b.stdout(), b.Logger.Named("session"), b.Metrics)
	if err != nil {
		return err
	}

	b.Logger.Verbose("start %s, fingerprint %s", b.Machine.Windows(), sess.Start().Fingerprint())

	if err := b.Capability.Handle(ctx, sess); err != nil && !util.IsHarmless(err) {
		return err
	}

	b.Logger.Verbose("end %s, metrics %s", b.Machine.Windows(), b.Metrics.JSON())
	return b.finish()
}

// finish saves and prints the end state as configured.
func (b *machineMode) finish() error {
	if b.SaveFile == "" && !b.ShowState {
		return nil
	}
	st, err := b.Machine.State()
	if err != nil {
		return err
	}
	if b.SaveFile != "" {
		if err := config.SaveState(b.SaveFile, st); err != nil {
			return fmt.Errorf("save state: %w", err)
		}
		b.Logger.Info("saved state to %s", b.SaveFile)
	}
	if b.ShowState {
		return writeState(b.stderr(), st)
	}
	return nil
}

// ── Encode ───────────────────────────────────────────────────────────

// EncodeMode passes a message through the machine, either the text
// given on the command line or standard input line by line.
type EncodeMode struct {
	machineMode
	Text string // empty → read Stdin
}

// Run encodes Text, or Stdin when Text is empty, and writes the result
// to Stdout.
func (m *EncodeMode) Run(ctx context.Context) error {
	var input io.Reader = strings.NewReader(m.Text)
	if m.Text == "" {
		input = m.stdin()
		m.Logger.Verbose("reading message from stdin")
	}
	return m.run(ctx, input)
}

// ── Interactive ──────────────────────────────────────────────────────

// InteractiveMode runs the lamp board on the terminal.
type InteractiveMode struct {
	machineMode
}

// Run blocks until the operator quits the board.
func (m *InteractiveMode) Run(ctx context.Context) error {
	return m.run(ctx, m.stdin())
}
