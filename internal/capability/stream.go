package capability

import (
	"context"
	"fmt"

	"goenigma/internal/session"
	"goenigma/util"
)

// Stream encodes the session's input line by line.  Each line becomes
// one output line; blank lines produce nothing.  A line holding a
// character the machine has no key for stops the stream, leaving the
// rotors where the previous line left them.
type Stream struct {
	// Group splits output into blocks of this many letters (0 = none).
	Group int
}

// Handle copies sess.Stdin to sess.Stdout through the machine until
// EOF or the context is cancelled.
func (s *Stream) Handle(ctx context.Context, sess *session.Session) error {
	return util.CopyLines(ctx, sess.Stdin, sess.Stdout, func(n int, line string) (string, error) {
		if util.Squeeze(line) == "" {
			return "", nil
		}
		out, err := sess.Encode(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", n, err)
		}
		sess.Logger.Verbose("line %d: %d letters, windows %s", n, len(out), sess.Machine.Windows())
		return util.Group(out, s.Group), nil
	})
}
