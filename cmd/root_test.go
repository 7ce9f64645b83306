package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	enerr "goenigma/internal/errors"
)

// runArgs executes the CLI with the given args and stdin, returning
// what it wrote to stdout and stderr.
func runArgs(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), err
}

// TestExecute_Version verifies --version prints a version string.
func TestExecute_Version(t *testing.T) {
	out, _, err := runArgs(t, "", "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "goenigma "+version+"\n" {
		t.Errorf("output = %q", out)
	}
}

// TestExecute_Help verifies --help prints usage without error.
func TestExecute_Help(t *testing.T) {
	_, errOut, err := runArgs(t, "", "--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Usage:", "--rotors", "--plug", "GOENIGMA_", "5 customary", "-g 5 edpudnrgys"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}

// TestExecute_List verifies --list prints the rotor catalog.
func TestExecute_List(t *testing.T) {
	out, _, err := runArgs(t, "", "--list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"I    notch Q", "V    notch Z", "Reflectors:", "  C"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog missing %q:\n%s", want, out)
		}
	}
}

// TestExecute_Encode covers messages given as arguments and on stdin.
func TestExecute_Encode(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "default machine",
			args: []string{"hello", "world"},
			want: "mfnczbbfzm\n",
		},
		{
			name:  "stdin with no arguments",
			stdin: "hello world\n",
			want:  "mfnczbbfzm\n",
		},
		{
			name: "ring and plug",
			args: []string{"-p", "KDO", "-s", "0,0,25", "-P", "hz", "hello world"},
			want: "dqhheprgzu\n",
		},
		{
			name: "rotor order",
			args: []string{"--rotors", "I,II,III", "aaaaa"},
			want: "bdzgo\n",
		},
		{
			name: "reflector C",
			args: []string{
				"-u", "C", "-r", "IV,V,II", "-s", "5,12,23", "-p", "qev",
				"-P", "aq", "-P", "by,cx",
				"-g", "5",
				"the quick brown fox jumps over the lazy dog",
			},
			want: "utgrh kbccw tqwjv kzrqm iickt smfvh toovx\n",
		},
		{
			name: "decode",
			args: []string{
				"-r", "II IV V", "-s", "BUL", "-p", "BLA",
				"-P", "AV BS CG DL FU HZ IN KM OW RX",
				"edpud nrgys zrcxn uytpo mrmbo",
			},
			want: "aufklxabteilungxvonxkurti\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runArgs(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

// TestExecute_Env verifies environment defaults and that flags win.
func TestExecute_Env(t *testing.T) {
	t.Setenv("GOENIGMA_ROTORS", "I II III")
	t.Setenv("GOENIGMA_GROUP", "5")

	out, _, err := runArgs(t, "", "aaaaa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "bdzgo\n" {
		t.Errorf("env rotors: output = %q", out)
	}

	out, _, err = runArgs(t, "", "-r", "III,II,I", "-g", "0", "hello", "world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "mfnczbbfzm\n" {
		t.Errorf("flags should override env: output = %q", out)
	}
}

// TestExecute_SaveThenResume verifies a saved end state continues the
// message where it stopped.
func TestExecute_SaveThenResume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.yaml")

	first, _, err := runArgs(t, "", "-o", path, "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := runArgs(t, "", "-f", path, "world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(first) + strings.TrimSpace(second); got != "mfnczbbfzm" {
		t.Errorf("split message = %q, want mfnczbbfzm", got)
	}
}

// TestExecute_DryRun verifies --dry-run validates and prints the setup.
func TestExecute_DryRun(t *testing.T) {
	out, _, err := runArgs(t, "", "--dry-run", "-p", "KDO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "position: K") || !strings.Contains(out, "# fingerprint") {
		t.Errorf("dry run output:\n%s", out)
	}
}

// TestExecute_ShowState verifies --show-state reports the end windows.
func TestExecute_ShowState(t *testing.T) {
	out, errOut, err := runArgs(t, "", "--show-state", "hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "mfnczbbfzm\n" {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(errOut, "position: K") {
		t.Errorf("end state missing from stderr:\n%s", errOut)
	}
}

// TestExecute_Errors verifies bad input is rejected with the right
// error kind.
func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		config bool
	}{
		{"unknown flag", []string{"--nonexistent-flag"}, false},
		{"two rotors", []string{"-r", "I,II", "abc"}, true},
		{"bad reflector", []string{"-u", "D", "abc"}, true},
		{"self plug", []string{"-P", "aa", "abc"}, false},
		{"shared plug letter", []string{"-P", "ab,bc", "abc"}, true},
		{"interactive with message", []string{"-i", "abc"}, true},
		{"invalid symbol", []string{"hello,", "world"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runArgs(t, "", tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.config && !enerr.Is(err, enerr.ErrInvalidConfig) {
				t.Errorf("err = %v, want a config error", err)
			}
		})
	}
}
