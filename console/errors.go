package console

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateFlag     = errors.New("duplicate flag")
	ErrDuplicateCommand  = errors.New("duplicate command")
	ErrDuplicateArgument = errors.New("duplicate argument")
	ErrArgumentOrder     = errors.New("optional argument declared before required argument")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidDefault    = errors.New("invalid default value")
	ErrStackableValue    = errors.New("valued flags cannot be stackable")
	ErrAlreadyParsed     = errors.New("input already parsed")

	ErrUnknownFlag     = errors.New("unknown flag")
	ErrMalformedFlag   = errors.New("malformed flag")
	ErrMissingValue    = errors.New("flag needs a value")
	ErrInvalidValue    = errors.New("invalid flag value")
	ErrMissingArgument = errors.New("missing required argument")

	ErrUndefined = errors.New("not defined")
)

// ConfigError is returned when flags, arguments, or commands are registered in a way that can never be parsed.
// A ConfigError is fatal at setup, and no parsing or command execution will happen after one is reported.
type ConfigError struct {
	wrapped error
}

func (e *ConfigError) Error() string {
	if e.wrapped == nil {
		return "configuration error"
	}
	return "configuration error: " + e.wrapped.Error()
}

func (e *ConfigError) Is(err error) bool {
	_, ok := err.(*ConfigError)
	return ok
}

func (e *ConfigError) Unwrap() error {
	return e.wrapped
}

func newConfigError(format string, args ...any) error {
	return &ConfigError{wrapped: fmt.Errorf(format, args...)}
}

// ParseError is returned from [Input.Parse] when the raw arguments don't satisfy the registered definitions.
// Token is the offending command line token, or the argument name when a required argument is missing.
type ParseError struct {
	Token   string
	wrapped error
}

func (e *ParseError) Error() string {
	if e.wrapped == nil {
		return "parse error"
	}
	return "parse error: " + e.wrapped.Error()
}

func (e *ParseError) Is(err error) bool {
	_, ok := err.(*ParseError)
	return ok
}

func (e *ParseError) Unwrap() error {
	return e.wrapped
}

func newParseError(token, format string, args ...any) error {
	return &ParseError{Token: token, wrapped: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned from [Console.Run] to a process exit status.
// Configuration and parse errors are usage problems and map to 2, any other error maps to 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, &ConfigError{}), errors.Is(err, &ParseError{}):
		return 2
	default:
		return 1
	}
}

// errorCollector gathers registration errors from chained calls so they can be reported together.
type errorCollector struct {
	errs []error
}

func (c *errorCollector) add(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

func (c *errorCollector) result() error {
	if len(c.errs) > 0 {
		return c
	}
	return nil
}

func (c *errorCollector) Error() string {
	var buf strings.Builder
	for i, err := range c.errs {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(err.Error())
	}
	return buf.String()
}

func (c *errorCollector) Unwrap() []error {
	return c.errs
}
