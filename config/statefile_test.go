package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"goenigma/enigma"
	enerr "goenigma/internal/errors"
)

const barbarossaYAML = `
reflector: b
rotors:
  - {type: II, ring: B, position: B}
  - {type: IV, ring: U, position: L}
  - {type: V, ring: L, position: A}
plugboard: [AV, BS, CG, DL, FU, HZ, IN, KM, OW, RX]
`

func TestUnmarshalState(t *testing.T) {
	st, err := UnmarshalState([]byte(barbarossaYAML))
	if err != nil {
		t.Fatalf("UnmarshalState: %v", err)
	}
	if st.Reflector != "B" {
		t.Errorf("Reflector = %q, want B after normalization", st.Reflector)
	}

	m, err := enigma.NewFromState(st)
	if err != nil {
		t.Fatalf("NewFromState: %v", err)
	}
	plain, err := m.EncodeMessage("edpud nrgys zrcxn uytpo mrmbo")
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}
	if plain != "aufklxabteilungxvonxkurti" {
		t.Errorf("plain = %q", plain)
	}
}

func TestUnmarshalState_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "reflector: B\nrotor: []\n"},
		{"two rotors", "reflector: B\nrotors:\n  - {type: I, ring: A, position: A}\n  - {type: I, ring: A, position: A}\n"},
		{"bad reflector", strings.Replace(barbarossaYAML, "reflector: b", "reflector: D", 1)},
		{"clashing cables", strings.Replace(barbarossaYAML, "RX]", "RA]", 1)},
		{"not yaml", "reflector: [B\n"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalState([]byte(tt.doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSaveLoadState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.yaml")
	want, err := UnmarshalState([]byte(barbarossaYAML))
	if err != nil {
		t.Fatalf("UnmarshalState: %v", err)
	}

	if err := SaveState(path, want); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != DefaultStateFileMode {
		t.Errorf("mode = %v, want %v", perm, DefaultStateFileMode)
	}

	got, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip:\n got %+v\nwant %+v", got, want)
	}
	if got.Fingerprint() != want.Fingerprint() {
		t.Error("fingerprint changed across save and load")
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %d entries", len(entries))
	}
}

func TestMarshalState(t *testing.T) {
	data, err := MarshalState(enigma.DefaultState())
	if err != nil {
		t.Fatalf("MarshalState: %v", err)
	}
	out := string(data)
	for _, want := range []string{"# goenigma", "reflector: B", "type: III", "position: A"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "plugboard") {
		t.Errorf("empty plugboard should be omitted:\n%s", out)
	}
}

func TestLoadState_Missing(t *testing.T) {
	_, err := LoadState(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !os.IsNotExist(enerr.Unwrap(err)) {
		t.Errorf("err = %v, want a not-exist error", err)
	}
}
