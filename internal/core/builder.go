package core

import (
	"fmt"

	"goenigma/config"
	"goenigma/enigma"
	"goenigma/internal/capability"
	"goenigma/internal/metrics"
	"goenigma/util"
)

// Build constructs the appropriate Mode from the given configuration.
// The machine is set up here, so a Mode that is returned always has a
// complete, validated machine behind it.
func Build(cfg *config.Config, streams IO, logger *util.Logger) (Mode, error) {
	m, err := buildMachine(cfg, logger)
	if err != nil {
		return nil, err
	}

	switch {
	case cfg.DryRun:
		return &StateMode{
			Machine:  m,
			SaveFile: cfg.SaveFile,
			Logger:   logger,
			IO:       streams,
		}, nil
	case cfg.Interactive:
		return &InteractiveMode{
			machineMode: buildMachineMode(cfg, m, &capability.Keyboard{AltScreen: true}, streams, logger),
		}, nil
	default:
		return &EncodeMode{
			machineMode: buildMachineMode(cfg, m, &capability.Stream{Group: cfg.Group}, streams, logger),
			Text:        cfg.Text,
		}, nil
	}
}

// ── shared helpers ───────────────────────────────────────────────────

// buildMachine resolves the flags over the state file, or over the
// default machine when no file is given.
func buildMachine(cfg *config.Config, logger *util.Logger) (*enigma.Machine, error) {
	base := enigma.DefaultState()
	if cfg.StateFile != "" {
		st, err := config.LoadState(cfg.StateFile)
		if err != nil {
			return nil, err
		}
		logger.Verbose("loaded state from %s", cfg.StateFile)
		base = st
	}

	st, err := cfg.Resolve(base)
	if err != nil {
		return nil, err
	}
	m, err := enigma.NewFromState(st)
	if err != nil {
		return nil, fmt.Errorf("set up machine: %w", err)
	}
	logger.Debug("machine %s %v, plugs %v", st.Reflector, st.Rotors, st.Plugboard)
	return m, nil
}

func buildMachineMode(cfg *config.Config, m *enigma.Machine, c capability.Capability, streams IO, logger *util.Logger) machineMode {
	return machineMode{
		Machine:    m,
		Capability: c,
		SaveFile:   cfg.SaveFile,
		ShowState:  cfg.ShowState,
		Logger:     logger,
		Metrics:    metrics.New(),
		IO:         streams,
	}
}
