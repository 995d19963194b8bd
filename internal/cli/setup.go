package cli

import (
	"fmt"
	"strconv"

	"github.com/mamaar/opcalc/pkg/calc"
)

// maxNameLength caps the calculator name read during setup.
const maxNameLength = 255

// setup walks the configuration dialogue: calculator name, operation count,
// then the operation symbols. Bad counts and bad symbols are re-prompted;
// everything else is fatal to the session.
func (s *Session) setup() (*calc.Calculator, error) {
	fmt.Fprint(s.out, "Enter calculator's name: ")
	name, err := s.in.ReadLine()
	if err != nil {
		return nil, err
	}
	if len(name) > maxNameLength {
		name = name[:maxNameLength]
	}

	count, err := s.readOperationCount()
	if err != nil {
		return nil, err
	}

	symbols, err := s.readOperationSymbols(count)
	if err != nil {
		return nil, err
	}

	ops := make([]calc.Operation, 0, count)
	for _, symbol := range symbols {
		op, err := calc.New(symbol)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return calc.NewCalculator(name, ops, s.counter)
}

// readOperationCount prompts until a parseable count within capacity is
// given. The rest of the line is discarded before each retry.
func (s *Session) readOperationCount() (int, error) {
	for {
		fmt.Fprint(s.out, "Enter number of operations: ")
		tok, err := s.in.Token()
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(tok)
		switch {
		case convErr != nil || n < 0:
			fmt.Fprintln(s.out, "Couldn't convert to number!")
		case n > calc.MaxOperations:
			fmt.Fprintf(s.out, "Exceeded operator capacity of %d!\n", calc.MaxOperations)
		default:
			return n, nil
		}
		s.in.DiscardLine()
	}
}

// readOperationSymbols prints the legend and reads count symbol tokens. Any
// invalid symbol discards the rest of the line and restarts the whole batch.
func (s *Session) readOperationSymbols(count int) ([]string, error) {
	fmt.Fprintln(s.out, "Enter operations: ")
	fmt.Fprintln(s.out, "+ - add")
	fmt.Fprintln(s.out, "- - subtract")
	fmt.Fprintln(s.out, "* - multiply")
	fmt.Fprintln(s.out, "/ - divide")
	fmt.Fprintln(s.out, "** - power")
	fmt.Fprintln(s.out, "V - root")

	symbols := make([]string, count)
	for {
		valid := true
		for i := 0; i < count; i++ {
			tok, err := s.in.Token()
			if err != nil {
				return nil, err
			}
			if !calc.ValidSymbol(tok) {
				fmt.Fprintln(s.out, "Invalid operator!")
				valid = false
				break
			}
			symbols[i] = tok
		}
		s.in.DiscardLine()
		if valid {
			return symbols, nil
		}
	}
}
