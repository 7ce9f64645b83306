package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"goenigma/enigma"
)

// stateHeader opens every saved state file.
const stateHeader = "# goenigma machine state\n"

// LoadState reads a YAML state file.  Unknown keys are rejected so a
// mistyped field does not silently fall back to a default.
func LoadState(path string) (enigma.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return enigma.State{}, fmt.Errorf("state file: %w", err)
	}
	st, err := UnmarshalState(data)
	if err != nil {
		return enigma.State{}, fmt.Errorf("state file %s: %w", path, err)
	}
	return st, nil
}

// UnmarshalState decodes and validates a YAML state document.
func UnmarshalState(data []byte) (enigma.State, error) {
	var st enigma.State
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&st); err != nil {
		return enigma.State{}, fmt.Errorf("decode: %w", err)
	}
	st = st.Normalize()
	if err := st.Validate(); err != nil {
		return enigma.State{}, err
	}
	return st, nil
}

// MarshalState encodes st as YAML with a two-space indent.
func MarshalState(st enigma.State) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(stateHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(st.Normalize()); err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveState writes st to path.  The file is written next to its final
// name and renamed into place, so a crash never leaves half a state.
func SaveState(path string, st enigma.State) error {
	data, err := MarshalState(st)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".goenigma-*.yaml")
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save state: %w", err)
	}
	if err := tmp.Chmod(DefaultStateFileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("save state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
