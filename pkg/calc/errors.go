package calc

import "fmt"

// CalcError represents errors raised by the calculator engine
type CalcError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *CalcError) Error() string {
	return e.Message
}

func (e *CalcError) Unwrap() error {
	return e.Cause
}

type ErrorType int

const (
	ConfigurationError ErrorType = iota
	DomainError
	CapacityError
	InputError
	NotFound
)

// newConfigError builds a configuration-tier error (invalid names, symbols,
// unknown operators). These correspond to fixed invariants of the engine.
func newConfigError(format string, args ...any) *CalcError {
	return &CalcError{Type: ConfigurationError, Message: fmt.Sprintf(format, args...)}
}

// newDomainError builds an arithmetic-domain error (divide by zero and friends).
func newDomainError(format string, args ...any) *CalcError {
	return &CalcError{Type: DomainError, Message: fmt.Sprintf(format, args...)}
}

// newInputError builds an error for malformed expression input, optionally
// wrapping the underlying parse failure.
func newInputError(cause error, format string, args ...any) *CalcError {
	return &CalcError{Type: InputError, Message: fmt.Sprintf(format, args...), Cause: cause}
}
