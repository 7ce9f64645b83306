package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goenigma/enigma"
	enerr "goenigma/internal/errors"
	"goenigma/internal/metrics"
	"goenigma/util"
)

func newSession(t *testing.T, m *enigma.Machine) (*Session, *metrics.Collector) {
	t.Helper()
	mc := metrics.New()
	sess, err := New(m, strings.NewReader(""), &bytes.Buffer{}, util.NewLogger(0), mc)
	require.NoError(t, err)
	return sess, mc
}

func TestNew_IncompleteMachine(t *testing.T) {
	_, err := New(enigma.New(), nil, nil, util.NewLogger(0), nil)
	assert.ErrorIs(t, err, enerr.ErrSetupIncomplete)
}

func TestPress(t *testing.T) {
	sess, mc := newSession(t, enigma.NewDefault())

	for _, r := range "HelloWorld" {
		_, err := sess.Press(r)
		require.NoError(t, err)
	}
	assert.Equal(t, "helloworld", sess.Typed())
	assert.Equal(t, "mfnczbbfzm", sess.Encoded())
	assert.Equal(t, "aak", sess.Machine.Windows())
	assert.EqualValues(t, 10, mc.Letters())
}

func TestPress_Rejected(t *testing.T) {
	sess, mc := newSession(t, enigma.NewDefault())

	_, err := sess.Press('7')
	assert.True(t, enerr.IsInvalidSymbol(err))
	assert.Empty(t, sess.Typed())
	assert.Equal(t, "aaa", sess.Machine.Windows())
	assert.EqualValues(t, 1, mc.ErrorCount())
}

func TestBackspace(t *testing.T) {
	m := enigma.NewDefault()
	require.NoError(t, m.SetWindows("kdo"))
	sess, mc := newSession(t, m)

	for _, r := range "abcd" {
		_, err := sess.Press(r)
		require.NoError(t, err)
	}
	require.Equal(t, "lfs", m.Windows())
	encoded := sess.Encoded()

	ok, err := sess.Backspace()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ker", m.Windows(), "double step reversed")
	assert.Equal(t, "abc", sess.Typed())
	assert.Equal(t, encoded[:3], sess.Encoded())

	// Retyping the same letter lights the same lamp.
	out, err := sess.Press('d')
	require.NoError(t, err)
	assert.Equal(t, rune(encoded[3]), out)

	for i := 0; i < 4; i++ {
		_, err := sess.Backspace()
		require.NoError(t, err)
	}
	assert.Equal(t, "kdo", m.Windows())

	ok, err = sess.Backspace()
	require.NoError(t, err)
	assert.False(t, ok, "nothing left to remove")
	assert.Equal(t, "kdo", m.Windows())
	assert.EqualValues(t, 5, mc.Undos())
}

func TestRewind(t *testing.T) {
	m := enigma.NewDefault()
	require.NoError(t, m.Plugboard().AddPair('h', 'z'))
	sess, mc := newSession(t, m)

	_, err := sess.Encode("some text")
	require.NoError(t, err)
	_, err = sess.Press('x')
	require.NoError(t, err)

	require.NoError(t, sess.Rewind())
	assert.Equal(t, "aaa", m.Windows())
	assert.Empty(t, sess.Typed())
	assert.Empty(t, sess.Encoded())
	assert.Equal(t, 1, m.Plugboard().Len())
	assert.EqualValues(t, 1, mc.Resets())
}

func TestEncode(t *testing.T) {
	sess, mc := newSession(t, enigma.NewDefault())

	out, err := sess.Encode("hello world")
	require.NoError(t, err)
	assert.Equal(t, "mfnczbbfzm", out)
	assert.Empty(t, sess.Typed(), "Encode does not record typed letters")
	assert.EqualValues(t, 1, mc.Messages())
	assert.EqualValues(t, 10, mc.Letters())

	_, err = sess.Encode("no, thanks")
	assert.True(t, enerr.IsInvalidSymbol(err))
	assert.Equal(t, "aak", sess.Machine.Windows(), "rejected message leaves rotors alone")
}

func TestEncode_CountsTurnovers(t *testing.T) {
	m := enigma.NewDefault()
	require.NoError(t, m.SetWindows("kdo"))
	sess, mc := newSession(t, m)

	_, err := sess.Encode("aaaaa")
	require.NoError(t, err)
	// kdq→ker moves the middle rotor, ker→lfs moves middle and left.
	assert.EqualValues(t, 2, mc.Turnovers())
	assert.EqualValues(t, 1, mc.DoubleSteps())
}

func TestSession_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := util.NewLogger(3)
	logger.SetOutput(&buf)
	logger.SetTimestamps(false)

	sess, err := New(enigma.NewDefault(), nil, nil, logger.Named("session"), nil)
	require.NoError(t, err)
	_, err = sess.Press('h')
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "[DBG] session: h -> m  windows aab")
}
