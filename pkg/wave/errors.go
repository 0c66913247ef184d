package wave

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every grid, source, boundary or
	// stability failure reported before stepping starts.
	ErrConfiguration = errors.New("wave: invalid configuration")

	// ErrTerminated is returned by Step once the step budget is exhausted.
	ErrTerminated = errors.New("wave: step budget exhausted")
)

// ConfigurationError describes a rejected configuration value.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("wave: invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("wave: invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrConfiguration.
func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

func configErr(field string, value any, format string, args ...any) error {
	return &ConfigurationError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}
