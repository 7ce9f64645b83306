// Package display renders the machine for a terminal: the rotor
// windows in a frame, the typed message above the encoded one, and the
// plugboard cabling underneath.
package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"goenigma/enigma"
	"goenigma/util"
)

var (
	windowStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#FFFF00")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(1, 3).
			Align(lipgloss.Center)

	typedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	lampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF00")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// MinWidth is the narrowest message column the box shrinks to.
const MinWidth = 11

// frame is the horizontal space taken by the box border and padding.
const frame = 8

// View is everything the box shows.
type View struct {
	Windows string // window letters, left to right
	Typed   string
	Encoded string
	Width   int // terminal width; 0 means unbounded
}

// Box renders v.  Messages longer than the terminal allows are cut from
// the front so the latest letters stay visible, and the typed and
// encoded lines are always cut to the same length.
func Box(v View) string {
	typed, encoded := v.Typed, v.Encoded
	if v.Width > 0 {
		room := v.Width - frame
		if room < MinWidth {
			room = MinWidth
		}
		typed, encoded = util.Tail(typed, room), util.Tail(encoded, room)
	}

	width := len([]rune(typed))
	if width < MinWidth {
		width = MinWidth
	}
	line := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	body := lipgloss.JoinVertical(lipgloss.Center,
		windowStyle.Render(Windows(v.Windows)),
		"",
		line.Render(typedStyle.Render(typed)),
		line.Render(barStyle.Render(Bars(typed))),
		line.Render(lampStyle.Render(encoded)),
	)
	return boxStyle.Render(body)
}

// Windows spaces the window letters out in upper case, "kdo" becoming
// "K  D  O".
func Windows(w string) string {
	letters := make([]string, 0, len(w))
	for _, r := range strings.ToUpper(w) {
		letters = append(letters, string(r))
	}
	return strings.Join(letters, "  ")
}

// Bars draws one connecting bar per letter of s, with an ellipsis kept
// in place where s was cut.
func Bars(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '…' {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('|')
	}
	return b.String()
}

// Plugs renders the plugboard cabling as upper-case pairs.
func Plugs(pairs []enigma.Pair) string {
	if len(pairs) == 0 {
		return labelStyle.Render("plugboard") + "  none"
	}
	cables := make([]string, len(pairs))
	for i, p := range pairs {
		cables[i] = strings.ToUpper(p.String())
	}
	return labelStyle.Render("plugboard") + "  " + strings.Join(cables, " ")
}

// Settings describes the rotor order, ring settings and reflector on
// one line, e.g. "B  III II I  rings A A A".
func Settings(st enigma.State) string {
	types := make([]string, len(st.Rotors))
	rings := make([]string, len(st.Rotors))
	for i, r := range st.Rotors {
		types[i] = r.Type
		rings[i] = strings.ToUpper(r.Ring)
	}
	return labelStyle.Render("reflector") + " " + st.Reflector + "  " +
		labelStyle.Render("rotors") + " " + strings.Join(types, " ") + "  " +
		labelStyle.Render("rings") + " " + strings.Join(rings, " ")
}

// Machine renders the full status of m: the box followed by its
// settings and plugboard.
func Machine(m *enigma.Machine, typed, encoded string, width int) (string, error) {
	st, err := m.State()
	if err != nil {
		return "", err
	}
	box := Box(View{Windows: m.Windows(), Typed: typed, Encoded: encoded, Width: width})
	return lipgloss.JoinVertical(lipgloss.Left,
		box,
		Settings(st),
		Plugs(m.Plugboard().Pairs()),
	), nil
}
