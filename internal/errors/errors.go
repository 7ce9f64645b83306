// Package errors provides domain-specific error types for goenigma.
//
// Every failure the cipher engine can report is synchronous and
// non-retryable: it points at operator or programmer error.  The types
// here carry enough structure (offending input, field, missing
// component) for the front end to explain what went wrong, and each
// one unwraps to a sentinel so callers can branch with [Is].
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrInvalidSymbol   = errors.New("invalid symbol")
	ErrInvalidConfig   = errors.New("invalid configuration value")
	ErrSetupIncomplete = errors.New("setup incomplete")
	ErrSocketOccupied  = errors.New("socket occupied")
	ErrNoPairing       = errors.New("no pairing")
	ErrSelfPair        = errors.New("letter cannot be paired with itself")
)

// ── Structured error types ───────────────────────────────────────────

// SymbolError reports input outside the 26-letter alphabet, or input
// that is not exactly one letter.
type SymbolError struct {
	Input  string // offending input, verbatim
	Reason string // optional detail
}

func (e *SymbolError) Error() string {
	s := fmt.Sprintf("invalid symbol %q", e.Input)
	if e.Reason != "" {
		s += ": " + e.Reason
	}
	return s
}

func (e *SymbolError) Unwrap() error { return ErrInvalidSymbol }

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// SetupError names the machine component that must be assigned before
// the machine can encode, and the setter that assigns it.
type SetupError struct {
	Component string // "reflector", "left rotor", ...
	Setter    string // e.g. "SetReflector"
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("machine cannot be used before the %s is set using Machine.%s",
		e.Component, e.Setter)
}

func (e *SetupError) Unwrap() error { return ErrSetupIncomplete }

// PlugError represents a rejected plugboard change.
type PlugError struct {
	Op      string // "add" or "remove"
	Letters string // letters involved
	Err     error  // one of the plugboard sentinels
}

func (e *PlugError) Error() string {
	return fmt.Sprintf("plugboard %s %s: %v", e.Op, e.Letters, e.Err)
}

func (e *PlugError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// Symbol creates a SymbolError for the given input.
func Symbol(input, reason string) *SymbolError {
	return &SymbolError{Input: input, Reason: reason}
}

// Config creates a ConfigError without a hint.
func Config(field string, value interface{}, message string) *ConfigError {
	return &ConfigError{Field: field, Value: value, Message: message}
}

// Plug creates a PlugError.
func Plug(op, letters string, err error) *PlugError {
	return &PlugError{Op: op, Letters: letters, Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// IsInvalidSymbol reports whether err was caused by bad letter input.
func IsInvalidSymbol(err error) bool { return errors.Is(err, ErrInvalidSymbol) }

// IsPlugConflict reports whether err is a rejected plugboard change.
func IsPlugConflict(err error) bool {
	return errors.Is(err, ErrSocketOccupied) ||
		errors.Is(err, ErrNoPairing) ||
		errors.Is(err, ErrSelfPair)
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use goenigma/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
