// Package metrics provides lightweight, lock-free counters for tracking
// what a goenigma session did: letters encoded, rotor turnovers, undos
// and rejected input.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for a goenigma session.
// A nil Collector is safe to use; all methods become no-ops.
type Collector struct {
	letters     atomic.Int64
	messages    atomic.Int64
	turnovers   atomic.Int64 // middle rotor moved
	doubleSteps atomic.Int64 // middle and left rotor moved together
	undos       atomic.Int64
	resets      atomic.Int64
	errorsTotal atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Encoding metrics ─────────────────────────────────────────────────

// LetterEncoded records one keypress and how the middle and left rotors
// moved with it.
func (c *Collector) LetterEncoded(middle, left bool) {
	if c == nil {
		return
	}
	c.letters.Add(1)
	if middle {
		c.turnovers.Add(1)
	}
	if left {
		c.doubleSteps.Add(1)
	}
}

// MessageEncoded records a whole message passed through the machine.
func (c *Collector) MessageEncoded() {
	if c == nil {
		return
	}
	c.messages.Add(1)
}

// Letters returns the total number of letters encoded.
func (c *Collector) Letters() int64 {
	if c == nil {
		return 0
	}
	return c.letters.Load()
}

// Messages returns the number of messages encoded.
func (c *Collector) Messages() int64 {
	if c == nil {
		return 0
	}
	return c.messages.Load()
}

// Turnovers returns how often the middle rotor moved.
func (c *Collector) Turnovers() int64 {
	if c == nil {
		return 0
	}
	return c.turnovers.Load()
}

// DoubleSteps returns how often the left rotor moved.
func (c *Collector) DoubleSteps() int64 {
	if c == nil {
		return 0
	}
	return c.doubleSteps.Load()
}

// ── Editing metrics ──────────────────────────────────────────────────

// Undo records a backspace that turned the rotors back.
func (c *Collector) Undo() {
	if c == nil {
		return
	}
	c.undos.Add(1)
}

// Undos returns the number of backspaces.
func (c *Collector) Undos() int64 {
	if c == nil {
		return 0
	}
	return c.undos.Load()
}

// Reset records a rewind to the start state.
func (c *Collector) Reset() {
	if c == nil {
		return
	}
	c.resets.Add(1)
}

// Resets returns the number of rewinds.
func (c *Collector) Resets() int64 {
	if c == nil {
		return 0
	}
	return c.resets.Load()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime           string `json:"uptime"`
	Letters          int64  `json:"letters"`
	Messages         int64  `json:"messages"`
	Turnovers        int64  `json:"turnovers"`
	DoubleSteps      int64  `json:"double_steps"`
	Undos            int64  `json:"undos"`
	Resets           int64  `json:"resets"`
	ErrorsTotal      int64  `json:"errors_total"`
	LastError        string `json:"last_error,omitempty"`
	LastErrorMessage string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:      time.Since(c.startTime).Truncate(time.Second).String(),
		Letters:     c.letters.Load(),
		Messages:    c.messages.Load(),
		Turnovers:   c.turnovers.Load(),
		DoubleSteps: c.doubleSteps.Load(),
		Undos:       c.undos.Load(),
		Resets:      c.resets.Load(),
		ErrorsTotal: c.errorsTotal.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
