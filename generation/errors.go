package generation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned when generator options cannot produce a dungeon
	ErrInvalidConfig = errors.New("invalid dungeon config")

	// ErrInvalidRange is returned when a random range is empty or inverted.
	// A validated config never produces one.
	ErrInvalidRange = errors.New("invalid random range")
)

// ConfigError names the option that failed validation
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
