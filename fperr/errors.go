package fperr

import (
	"fmt"
	"strings"
)

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeLaw    ErrorType = "LawViolation"
	TypeConfig ErrorType = "ConfigError"
)

// Error is the interface for all errors reported by this module.
type Error interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for module errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// LawError reports a container that broke one of the Pointed, Functor or Monad laws.
type LawError struct {
	BaseError
	Law       string
	Container string
	Got       string
	Want      string
}

func (e *LawError) Error() string {
	msg := fmt.Sprintf("[%s] %s: %s", e.ErrType, e.Container, e.Law)
	if e.Got != "" || e.Want != "" {
		msg += fmt.Sprintf(": got %s, want %s", e.Got, e.Want)
	}
	if e.Msg != "" {
		msg += " (" + e.Msg + ")"
	}
	return msg
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	BaseError
	Key   string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s=%q: %s", e.ErrType, e.Key, e.Value, e.Msg)
}

// MultiError collects multiple errors.
type MultiError struct {
	Errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) occurred:\n", len(m.Errors)))
	for _, err := range m.Errors {
		sb.WriteString(fmt.Sprintf("- %v\n", err))
	}
	return sb.String()
}

func (m *MultiError) Type() ErrorType {
	if len(m.Errors) > 0 {
		if fe, ok := m.Errors[0].(Error); ok {
			return fe.Type()
		}
	}
	return "MultiError"
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// Append adds err to m, ignoring nil.
func (m *MultiError) Append(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// ErrOrNil returns m when it holds at least one error.
func (m *MultiError) ErrOrNil() error {
	if m == nil || len(m.Errors) == 0 {
		return nil
	}
	return m
}

// NewLawError creates a LawError with the observed and expected renderings.
func NewLawError(container, law, got, want string) *LawError {
	return &LawError{
		BaseError: BaseError{
			ErrType: TypeLaw,
		},
		Law:       law,
		Container: container,
		Got:       got,
		Want:      want,
	}
}

// NewConfigError creates a ConfigError for key=value.
func NewConfigError(key, value, msg string) *ConfigError {
	return &ConfigError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeConfig,
		},
		Key:   key,
		Value: value,
	}
}
