// Package cmd wires up the CLI flags and dispatches to the core modes.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"goenigma/config"
	"goenigma/enigma"
	"goenigma/internal/core"
	"goenigma/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X goenigma/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the appropriate goenigma mode.
func Execute(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := &config.Config{}
	fs := flag.NewFlagSet("goenigma", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// ── machine ──────────────────────────────────────────────────
	var rotors, rings, positions string
	var plugs []string
	fs.StringVarP(&cfg.Reflector, "reflector", "u", "", "Reflector: B or C (default B)")
	fs.StringVarP(&rotors, "rotors", "r", "", "Rotor types, left to right (default III,II,I)")
	fs.StringVarP(&rings, "rings", "s", "", "Ring settings, letters or 0-25 (default A,A,A)")
	fs.StringVarP(&positions, "positions", "p", "", "Start windows, e.g. KDO (default AAA)")
	fs.StringArrayVarP(&plugs, "plug", "P", nil, "Plugboard cables, e.g. HZ,AB (repeatable)")

	// ── state files ──────────────────────────────────────────────
	fs.StringVarP(&cfg.StateFile, "state", "f", "", "Load the machine setup from a YAML file")
	fs.StringVarP(&cfg.SaveFile, "save", "o", "", "Save the end state to a YAML file")

	// ── mode ─────────────────────────────────────────────────────
	fs.BoolVarP(&cfg.Interactive, "interactive", "i", false, "Type on the lamp board")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Print the resolved setup and exit")

	// ── output ───────────────────────────────────────────────────
	fs.IntVarP(&cfg.Group, "group", "g", config.DefaultGroup,
		fmt.Sprintf("Letters per output group (0 = ungrouped, %d customary)", config.CustomaryGroup))
	fs.BoolVar(&cfg.ShowState, "show-state", false, "Print the end state to stderr")
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")

	var showVersion, showHelp, showList bool
	fs.BoolVar(&showList, "list", false, "List rotor and reflector types and exit")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(stderr, fs) }

	// ── environment, then flags ──────────────────────────────────
	config.LoadFromEnv(cfg)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp || (len(args) == 0 && isTerminal(stdin)) {
		printUsage(stderr, fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "goenigma %s\n", version)
		return nil
	}
	if showList {
		printCatalog(stdout)
		return nil
	}

	// ── triples and cables ───────────────────────────────────────
	triples := []struct {
		flag string
		spec string
		dst  *[]string
	}{
		{"rotors", rotors, &cfg.Rotors},
		{"rings", rings, &cfg.Rings},
		{"positions", positions, &cfg.Positions},
	}
	for _, tr := range triples {
		if !fs.Changed(tr.flag) {
			continue
		}
		vals, err := config.ParseTriple(tr.flag, tr.spec)
		if err != nil {
			return err
		}
		*tr.dst = vals
	}
	if fs.Changed("plug") {
		cfg.Plugs = plugs
	}

	// ── positional arguments ─────────────────────────────────────
	cfg.Text = strings.Join(fs.Args(), " ")

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	// ── build and run ────────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)
	logger.SetOutput(stderr)

	mode, err := core.Build(cfg, core.IO{Stdin: stdin, Stdout: stdout, Stderr: stderr}, logger)
	if err != nil {
		return err
	}
	return mode.Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printCatalog(w io.Writer) {
	fmt.Fprintln(w, "Rotors:")
	for _, t := range enigma.RotorTypes() {
		fmt.Fprintf(w, "  %-4s notch %c\n", t, t.Notch()-'a'+'A')
	}
	fmt.Fprintln(w, "Reflectors:")
	for _, t := range enigma.ReflectorTypes() {
		fmt.Fprintf(w, "  %s\n", t)
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `goenigma – three-rotor cipher machine v%s

Encodes and decodes messages the way the wartime three-rotor machine
did: the same setup turns plain text into cipher text and back.

Usage:
  goenigma [options] <message...>             Encode a message
  goenigma [options] < file                   Encode stdin line by line
  goenigma -i [options]                       Type on the lamp board
  goenigma --dry-run [options]                Print the resolved setup

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Environment:
  %sREFLECTOR, ROTORS, RINGS, POSITIONS, PLUGBOARD, STATE, SAVE,
  GROUP, SHOW_STATE, VERBOSE                  Defaults for the flags above

Examples:
  goenigma hello world                        Default machine (B; III II I; AAA)
  goenigma -r II,IV,V -s B,U,L -p BLA -P "AV BS CG DL FU HZ IN KM OW RX" -g %d edpudnrgys
  goenigma -p KDO -o key.yaml < plain.txt     Encode a file, keep the end state
  goenigma -f key.yaml -i                     Resume on the lamp board
`, config.EnvPrefix, config.CustomaryGroup)
}
