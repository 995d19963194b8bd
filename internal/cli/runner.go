package cli

import "errors"

// ErrUnknownOption is returned by Execute for unregistered menu selections.
var ErrUnknownOption = errors.New("unknown menu option")

// OptionFunc represents a menu option handler signature
type OptionFunc func() error

// Runner handles menu option routing and execution
type Runner struct {
	options map[int]OptionFunc
}

// NewRunner creates a new menu runner
func NewRunner() *Runner {
	return &Runner{
		options: make(map[int]OptionFunc),
	}
}

// RegisterOption registers a handler for a menu selection
func (r *Runner) RegisterOption(selection int, fn OptionFunc) {
	r.options[selection] = fn
}

// Execute runs the handler for the given menu selection
func (r *Runner) Execute(selection int) error {
	fn, ok := r.options[selection]
	if !ok {
		return ErrUnknownOption
	}
	return fn()
}
