package capability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"goenigma/internal/display"
	"goenigma/internal/session"
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// ── Key bindings ─────────────────────────────────────────────────────

type keyMap struct {
	Backspace key.Binding
	Rewind    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Backspace, k.Rewind, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Backspace, k.Rewind},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Backspace: key.NewBinding(
		key.WithKeys("backspace", "ctrl+h"),
		key.WithHelp("⌫", "take back letter"),
	),
	Rewind: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "rewind"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// ── Model ────────────────────────────────────────────────────────────

type model struct {
	sess       *session.Session
	keys       keyMap
	help       help.Model
	width      int
	message    string
	messageErr bool
}

func newModel(sess *session.Session, width int) model {
	h := help.New()
	h.Width = width
	return model{sess: sess, keys: keys, help: h, width: width}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		m.message, m.messageErr = "", false

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Backspace):
			ok, err := m.sess.Backspace()
			switch {
			case err != nil:
				m.fail(err.Error())
			case !ok:
				m.fail("nothing to take back")
			}

		case key.Matches(msg, m.keys.Rewind):
			if err := m.sess.Rewind(); err != nil {
				m.fail(err.Error())
				break
			}
			m.message = "rewound to " + strings.ToUpper(m.sess.Machine.Windows())

		case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
			m.press(msg.Runes)

		default:
			m.fail(fmt.Sprintf("invalid input: %s", msg))
		}
	}
	return m, nil
}

// press feeds typed runes to the machine, stopping at the first one it
// has no key for.  Spaces are passed over.
func (m *model) press(runes []rune) {
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		if _, err := m.sess.Press(r); err != nil {
			m.fail(fmt.Sprintf("invalid input: %q", r))
			return
		}
	}
}

func (m *model) fail(msg string) {
	m.message, m.messageErr = msg, true
	m.sess.Logger.Verbose("keyboard: %s", msg)
}

func (m model) View() string {
	var s strings.Builder

	box, err := display.Machine(m.sess.Machine, m.sess.Typed(), m.sess.Encoded(), m.width)
	if err != nil {
		return errorStyle.Render("✗ "+err.Error()) + "\n"
	}
	s.WriteString(box)
	s.WriteString("\n\n")

	if m.message != "" {
		if m.messageErr {
			s.WriteString(errorStyle.Render("✗ " + m.message))
		} else {
			s.WriteString(successStyle.Render("✓ " + m.message))
		}
		s.WriteString("\n\n")
	}

	s.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return s.String()
}

// ── Capability ───────────────────────────────────────────────────────

// Keyboard runs the interactive lamp board: every letter typed lights
// its lamp and turns the rotors, backspace takes the letter back and
// turns them back, ctrl+r rewinds to the start state.
type Keyboard struct {
	// AltScreen draws the board on the terminal's alternate screen.
	AltScreen bool
}

// Handle runs the board until the operator quits or ctx is cancelled,
// then prints the final box to sess.Stdout.
func (k *Keyboard) Handle(ctx context.Context, sess *session.Session) error {
	width := termWidth(sess.Stdout)

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(sess.Stdin),
		tea.WithOutput(sess.Stdout),
	}
	if k.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(newModel(sess, width), opts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("keyboard: %w", err)
	}

	box, err := display.Machine(sess.Machine, sess.Typed(), sess.Encoded(), width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(sess.Stdout, box)
	return err
}

// termWidth reports the width of w when it is a terminal, else 0.
func termWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
