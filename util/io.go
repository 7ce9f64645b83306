package util

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultBufSize is the initial line buffer size for stream encoding
// (32 KiB).  Longer lines grow the buffer up to MaxLineSize.
const DefaultBufSize = 32 * 1024

// MaxLineSize bounds a single input line.
const MaxLineSize = 1 << 20

// LineFunc transforms one input line.  The returned text is written
// followed by a newline; an empty result writes nothing.
type LineFunc func(n int, line string) (string, error)

// CopyLines reads r line by line, passes every line through fn and
// writes the results to w until r reaches EOF, fn fails, or the context
// is cancelled.  Line numbers passed to fn start at 1.
func CopyLines(ctx context.Context, r io.Reader, w io.Writer, fn LineFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errCh := make(chan error, 1)

	// reader → lines.  errCh receives exactly one value on every path.
	go func() {
		var err error
		defer func() { errCh <- err }()
		defer close(lines)
		buf := GetBuf()
		defer PutBuf(buf)

		sc := bufio.NewScanner(r)
		sc.Buffer(*buf, MaxLineSize)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				err = ctx.Err()
				return
			}
		}
		err = sc.Err()
	}()

	bw := bufio.NewWriter(w)
	defer bw.Flush() //nolint:errcheck

	n := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := <-errCh; err != nil && !isHarmless(err) {
					return fmt.Errorf("read input: %w", err)
				}
				return bw.Flush()
			}
			n++
			out, err := fn(n, line)
			if err != nil {
				return err
			}
			if out == "" {
				continue
			}
			if _, err := bw.WriteString(out + "\n"); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			// Interactive pipes see each line as soon as it is encoded.
			if err := bw.Flush(); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}
}

// IsHarmless reports whether err is expected while shutting down:
// end of input, a closed pipe, or a cancelled context.
func IsHarmless(err error) bool { return isHarmless(err) }

// isHarmless returns true for errors that are expected during shutdown.
func isHarmless(err error) bool {
	if err == nil {
		return true
	}
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed) ||
		errors.Is(err, context.Canceled)
}
