package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mamaar/opcalc/pkg/calc"
)

// exitOption is the menu selection that ends the session.
const exitOption = 4

// Session drives one interactive calculator session: the setup dialogue
// followed by the menu loop. The expression evaluator reads from the same
// token stream as the menu, so a calculation continues mid-stream.
type Session struct {
	in      *TokenReader
	out     io.Writer
	counter *calc.Counter
	runner  *Runner
	calc    *calc.Calculator
	verbose bool
}

// NewSession creates a session reading from r and writing to w.
func NewSession(r io.Reader, w io.Writer) *Session {
	return &Session{
		in:      NewTokenReader(r),
		out:     w,
		counter: calc.NewCounter(),
		runner:  NewRunner(),
	}
}

// Calculator returns the calculator built during setup, or nil before Run.
func (s *Session) Calculator() *calc.Calculator {
	return s.calc
}

// SetVerbose enables the end-of-session summary.
func (s *Session) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Run performs setup and then serves the menu until the user exits. Engine
// errors (domain or configuration) terminate the session.
func (s *Session) Run() error {
	c, err := s.setup()
	if err != nil {
		return err
	}
	s.calc = c

	s.runner.RegisterOption(1, s.listOperations)
	s.runner.RegisterOption(2, s.listInputFormat)
	s.runner.RegisterOption(3, s.startCalculation)

	if err := s.menuLoop(); err != nil {
		return err
	}
	if s.verbose {
		fmt.Fprintf(s.out, "Successful calculations: %d\n", s.counter.Value())
	}
	return nil
}

func (s *Session) menuLoop() error {
	for {
		fmt.Fprintln(s.out, "1. List supported operations")
		fmt.Fprintln(s.out, "2. List input format")
		fmt.Fprintln(s.out, "3. Start calculation")
		fmt.Fprintln(s.out, "4. Exit")

		tok, err := s.in.Token()
		if err != nil {
			return err
		}
		selection, convErr := strconv.Atoi(tok)
		if convErr != nil {
			s.invalidOption()
			continue
		}
		if selection == exitOption {
			return nil
		}
		if err := s.runner.Execute(selection); err != nil {
			if errors.Is(err, ErrUnknownOption) {
				s.invalidOption()
				continue
			}
			return err
		}
	}
}

func (s *Session) invalidOption() {
	fmt.Fprintln(s.out, "Invalid option, try again.")
	s.in.DiscardLine()
}

func (s *Session) listOperations() error {
	s.calc.ListSupportedOperations(s.out)
	return nil
}

func (s *Session) listInputFormat() error {
	s.calc.ListInputFormat(s.out)
	return nil
}

func (s *Session) startCalculation() error {
	result, err := s.calc.EvaluateTokens(s.in.Token)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%g\n", result)
	return nil
}
