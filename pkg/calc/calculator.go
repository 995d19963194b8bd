package calc

import (
	"fmt"
	"io"
	"sync"
)

// MaxOperations is the fixed capacity of a calculator's operation list.
const MaxOperations = 16

// Calculator is a named aggregate of a bounded, ordered operation list plus
// left-to-right expression evaluation. Operations are stored as owned clones
// in selection order; duplicates are permitted. The operation list is guarded
// by a lock so that AddOperation is safe against concurrent evaluation, as
// happens under the MCP server.
type Calculator struct {
	name      string
	successes *Counter

	mu         sync.RWMutex
	operations []Operation
}

// NewCalculator builds a calculator owning clones of the given operations.
// The counter records completed calculations and may be shared between
// calculators for process-wide bookkeeping; nil gets a private counter.
func NewCalculator(name string, operations []Operation, counter *Counter) (*Calculator, error) {
	if name == "" {
		return nil, newConfigError("Invalid calculator name!")
	}
	if len(operations) > MaxOperations {
		return nil, &CalcError{
			Type:    CapacityError,
			Message: fmt.Sprintf("Exceeded operator capacity of %d!", MaxOperations),
		}
	}
	if counter == nil {
		counter = NewCounter()
	}
	c := &Calculator{
		name:       name,
		operations: make([]Operation, 0, MaxOperations),
		successes:  counter,
	}
	for _, op := range operations {
		c.operations = append(c.operations, op.Clone())
	}
	return c, nil
}

// Name returns the calculator's display name.
func (c *Calculator) Name() string {
	return c.name
}

// Operations returns a copy of the stored operation list in insertion order.
func (c *Calculator) Operations() []Operation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ops := make([]Operation, len(c.operations))
	copy(ops, c.operations)
	return ops
}

// SuccessfulCalculations returns the count of completed calculations on the
// counter this calculator reports to.
func (c *Calculator) SuccessfulCalculations() int64 {
	return c.successes.Value()
}

// AddOperation appends a clone of op to the operation list. It fails with a
// capacity error once MaxOperations entries are stored.
func (c *Calculator) AddOperation(op Operation) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.operations) >= MaxOperations {
		return &CalcError{Type: CapacityError, Message: "Capacity for operations exceeded!"}
	}
	c.operations = append(c.operations, op.Clone())
	return nil
}

// ListSupportedOperations writes one "symbol - name" line per stored
// operation, in insertion order.
func (c *Calculator) ListSupportedOperations(w io.Writer) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, op := range c.operations {
		fmt.Fprintf(w, "%s - %s\n", op.Symbol(), op.Name())
	}
}

// ListInputFormat writes the fixed usage text for interactive expressions.
// The text is identical on every call regardless of calculator state.
func (c *Calculator) ListInputFormat(w io.Writer) {
	fmt.Fprintln(w, "<num1> <symbol> <num2> <symbol> <num3> ... <numN> =")
	fmt.Fprintln(w, "Please make sure to include spaces between each number and operator.")
}

// lookup returns the first stored operation whose symbol matches, scanning
// in insertion order. ok is false when no operation matches.
func (c *Calculator) lookup(symbol string) (Operation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, op := range c.operations {
		if op.Symbol() == symbol {
			return op, true
		}
	}
	return nil, false
}

// step applies one fold step. An operator symbol that was never registered
// on this calculator silently yields 0 for the step rather than failing.
func (c *Calculator) step(acc, operand float64, symbol string) (float64, error) {
	op, ok := c.lookup(symbol)
	if !ok {
		return 0, nil
	}
	return op.Execute(acc, operand)
}
