package core

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the kind shared by every configuration error.
// Check with errors.Is(err, core.ErrInvalidConfig).
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError describes one rejected configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfig, e.Field, e.Reason)
}

// Is matches ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Invalidf creates a ConfigError with a formatted reason.
func Invalidf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InvariantError is the panic value used when simulation state breaks an
// invariant that construction should have made impossible.
type InvariantError struct {
	Msg string
}

func (e InvariantError) Error() string {
	return "invariant violated: " + e.Msg
}

// Invariant panics with an InvariantError when ok is false.
func Invariant(ok bool, format string, args ...any) {
	if !ok {
		panic(InvariantError{Msg: fmt.Sprintf(format, args...)})
	}
}
