// Package capability defines what happens once a machine is set up.
// Each Capability encapsulates a single behaviour (encode a stream of
// lines, run the interactive keyboard) and operates on a Session
// rather than on raw readers and writers, which keeps capabilities
// testable and decoupled from the terminal.
package capability

import (
	"context"

	"goenigma/internal/session"
)

// Capability drives a session according to a specific behaviour.
// Implementations include line-by-line encoding (Stream) and the
// interactive lamp board (Keyboard).
type Capability interface {
	// Handle runs the capability against the given session.
	// It blocks until input is exhausted, the operator quits, or the
	// context is cancelled.
	Handle(ctx context.Context, sess *session.Session) error
}
