package core

import (
	"context"
	"fmt"
	"io"

	"goenigma/config"
	"goenigma/enigma"
	"goenigma/internal/display"
	"goenigma/util"
)

// StateMode prints the resolved setup without encoding anything: the
// state as YAML, its fingerprint and the machine box.  With SaveFile
// set it also writes the state out, which is how key sheets are made.
type StateMode struct {
	Machine  *enigma.Machine
	SaveFile string
	Logger   *util.Logger
	IO
}

// Run writes the report to Stdout.
func (m *StateMode) Run(_ context.Context) error {
	st, err := m.Machine.State()
	if err != nil {
		return err
	}
	if err := writeState(m.stdout(), st); err != nil {
		return err
	}
	box, err := display.Machine(m.Machine, "", "", 0)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(m.stdout(), box); err != nil {
		return err
	}

	if m.SaveFile != "" {
		if err := config.SaveState(m.SaveFile, st); err != nil {
			return fmt.Errorf("save state: %w", err)
		}
		m.Logger.Info("saved state to %s", m.SaveFile)
	}
	return nil
}

// writeState prints st as a YAML document followed by its fingerprint.
func writeState(w io.Writer, st enigma.State) error {
	data, err := config.MarshalState(st)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "# fingerprint %s\n", st.Fingerprint())
	return err
}
