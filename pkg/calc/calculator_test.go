package calc

import (
	"bufio"
	"strings"
	"sync"
	"testing"
)

func newTestCalculator(t *testing.T, counter *Counter, symbols ...string) *Calculator {
	t.Helper()
	ops := make([]Operation, 0, len(symbols))
	for _, symbol := range symbols {
		op, err := New(symbol)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", symbol, err)
		}
		ops = append(ops, op)
	}
	c, err := NewCalculator("Test", ops, counter)
	if err != nil {
		t.Fatalf("NewCalculator failed: %v", err)
	}
	return c
}

func wordScanner(input string) *bufio.Scanner {
	sc := bufio.NewScanner(strings.NewReader(input))
	sc.Split(bufio.ScanWords)
	return sc
}

func TestNewCalculatorValidation(t *testing.T) {
	if _, err := NewCalculator("", nil, nil); err == nil {
		t.Error("Expected error for empty name")
	}

	ops := make([]Operation, MaxOperations+1)
	for i := range ops {
		ops[i] = NewAddOperation()
	}
	if _, err := NewCalculator("Test", ops, nil); err == nil {
		t.Errorf("Expected error for %d operations", MaxOperations+1)
	}

	// Exactly MaxOperations is fine.
	if _, err := NewCalculator("Test", ops[:MaxOperations], nil); err != nil {
		t.Errorf("NewCalculator with %d operations failed: %v", MaxOperations, err)
	}
}

func TestCalculatorOwnsClones(t *testing.T) {
	op := NewAddOperation()
	c, err := NewCalculator("Test", []Operation{op}, nil)
	if err != nil {
		t.Fatalf("NewCalculator failed: %v", err)
	}

	if err := op.SetName("Mutated"); err != nil {
		t.Fatalf("SetName failed: %v", err)
	}
	if got := c.Operations()[0].Name(); got != "Add" {
		t.Errorf("Stored operation shares state with caller's instance: %q", got)
	}
}

func TestListSupportedOperations(t *testing.T) {
	c := newTestCalculator(t, nil, "+", "-", "*")

	var b strings.Builder
	c.ListSupportedOperations(&b)

	expected := "+ - Add\n- - Subtract\n* - Multiply\n"
	if b.String() != expected {
		t.Errorf("Expected %q, got %q", expected, b.String())
	}
}

func TestListInputFormatIdempotent(t *testing.T) {
	c := newTestCalculator(t, nil, "+")

	expected := "<num1> <symbol> <num2> <symbol> <num3> ... <numN> =\n" +
		"Please make sure to include spaces between each number and operator.\n"

	var first, second strings.Builder
	c.ListInputFormat(&first)

	// State changes must not affect the usage text.
	if err := c.AddOperation(NewDivideOperation()); err != nil {
		t.Fatalf("AddOperation failed: %v", err)
	}
	c.ListInputFormat(&second)

	if first.String() != expected {
		t.Errorf("Expected %q, got %q", expected, first.String())
	}
	if second.String() != first.String() {
		t.Errorf("ListInputFormat output changed between calls")
	}
}

func TestAddOperationCapacity(t *testing.T) {
	c := newTestCalculator(t, nil)
	for i := 0; i < MaxOperations; i++ {
		if err := c.AddOperation(NewAddOperation()); err != nil {
			t.Fatalf("AddOperation %d failed: %v", i, err)
		}
	}

	err := c.AddOperation(NewAddOperation())
	if err == nil {
		t.Fatal("Expected capacity error")
	}
	if err.Error() != "Capacity for operations exceeded!" {
		t.Errorf("Unexpected message: %q", err.Error())
	}
	cerr, ok := err.(*CalcError)
	if !ok || cerr.Type != CapacityError {
		t.Errorf("Expected CapacityError, got %#v", err)
	}
	if len(c.Operations()) != MaxOperations {
		t.Errorf("Operation list grew past capacity: %d", len(c.Operations()))
	}
}

func TestEvaluateLeftToRight(t *testing.T) {
	counter := NewCounter()
	c := newTestCalculator(t, counter, "+", "-")

	result, err := c.Evaluate(wordScanner("10 + 5 - 3 ="))
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if result != 12 {
		t.Errorf("Expected 12, got %g", result)
	}
	if counter.Value() != 1 {
		t.Errorf("Expected 1 successful calculation, got %d", counter.Value())
	}
}

func TestEvaluateNoPrecedence(t *testing.T) {
	c := newTestCalculator(t, nil, "+", "*")

	// Strict left-to-right fold: (2+3)*4, not 2+(3*4).
	result, err := c.Evaluate(wordScanner("2 + 3 * 4 ="))
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if result != 20 {
		t.Errorf("Expected 20, got %g", result)
	}
}

func TestEvaluateDivideByZero(t *testing.T) {
	counter := NewCounter()
	c := newTestCalculator(t, counter, "/")

	_, err := c.Evaluate(wordScanner("8 / 0 ="))
	if err == nil {
		t.Fatal("Expected divide-by-zero error")
	}
	if err.Error() != "Cannot divide by zero!" {
		t.Errorf("Unexpected message: %q", err.Error())
	}
	if counter.Value() != 0 {
		t.Errorf("Counter incremented on failed calculation: %d", counter.Value())
	}
}

func TestEvaluateUnregisteredOperator(t *testing.T) {
	counter := NewCounter()
	c := newTestCalculator(t, counter, "+")

	// An operator the calculator does not carry silently yields 0 for the
	// step instead of failing.
	result, err := c.Evaluate(wordScanner("5 * 2 ="))
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if result != 0 {
		t.Errorf("Expected 0, got %g", result)
	}
	if counter.Value() != 1 {
		t.Errorf("Expected the calculation to count as successful, got %d", counter.Value())
	}
}

func TestEvaluateSingleOperand(t *testing.T) {
	c := newTestCalculator(t, nil, "+")

	result, err := c.Evaluate(wordScanner("42 ="))
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if result != 42 {
		t.Errorf("Expected 42, got %g", result)
	}
}

func TestEvaluateLeavesScannerUsable(t *testing.T) {
	c := newTestCalculator(t, nil, "+")

	sc := wordScanner("1 + 2 = next")
	if _, err := c.Evaluate(sc); err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !sc.Scan() || sc.Text() != "next" {
		t.Errorf("Expected 'next' to remain on the stream, got %q", sc.Text())
	}
}

func TestEvaluateInputErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"non numeric first operand", "abc + 2 ="},
		{"non numeric second operand", "1 + abc ="},
		{"missing terminator", "1 + 2"},
		{"operator then end", "1 +"},
	}

	counter := NewCounter()
	c := newTestCalculator(t, counter, "+")
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := c.Evaluate(wordScanner(tc.input)); err == nil {
				t.Errorf("Expected error for input %q", tc.input)
			}
		})
	}
	if counter.Value() != 0 {
		t.Errorf("Counter incremented on failed calculations: %d", counter.Value())
	}
}

func TestEvaluateString(t *testing.T) {
	counter := NewCounter()
	c := newTestCalculator(t, counter, "+", "-", "*", "/")

	result, err := c.EvaluateString("10 + 5 - 3 =")
	if err != nil {
		t.Fatalf("EvaluateString failed: %v", err)
	}
	if result != 12 {
		t.Errorf("Expected 12, got %g", result)
	}

	if _, err := c.EvaluateString("1 + 2"); err == nil {
		t.Error("Expected error for missing '='")
	}
	if counter.Value() != 1 {
		t.Errorf("Expected 1 successful calculation, got %d", counter.Value())
	}
}

func TestSharedCounter(t *testing.T) {
	counter := NewCounter()
	a := newTestCalculator(t, counter, "+")
	b := newTestCalculator(t, counter, "-")

	if _, err := a.EvaluateString("1 + 1 ="); err != nil {
		t.Fatalf("EvaluateString failed: %v", err)
	}
	if _, err := b.EvaluateString("5 - 2 ="); err != nil {
		t.Fatalf("EvaluateString failed: %v", err)
	}

	if a.SuccessfulCalculations() != 2 || b.SuccessfulCalculations() != 2 {
		t.Errorf("Expected shared count 2, got %d and %d",
			a.SuccessfulCalculations(), b.SuccessfulCalculations())
	}
}

func TestConcurrentAddAndEvaluate(t *testing.T) {
	counter := NewCounter()
	c := newTestCalculator(t, counter, "+")

	// Evaluation walks the operation list while AddOperation grows it;
	// run both under the race detector.
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if _, err := c.EvaluateString("1 + 1 ="); err != nil {
				t.Errorf("EvaluateString failed: %v", err)
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < MaxOperations-1; i++ {
			if err := c.AddOperation(NewSubtractOperation()); err != nil {
				t.Errorf("AddOperation %d failed: %v", i, err)
				return
			}
		}
	}()

	wg.Wait()

	if got := len(c.Operations()); got != MaxOperations {
		t.Errorf("Expected %d operations after concurrent adds, got %d", MaxOperations, got)
	}
	if counter.Value() != 500 {
		t.Errorf("Expected 500 successful calculations, got %d", counter.Value())
	}
}

func TestDuplicateOperationsPermitted(t *testing.T) {
	c := newTestCalculator(t, nil, "+", "+", "-")
	if len(c.Operations()) != 3 {
		t.Errorf("Expected 3 stored operations, got %d", len(c.Operations()))
	}

	var b strings.Builder
	c.ListSupportedOperations(&b)
	expected := "+ - Add\n+ - Add\n- - Subtract\n"
	if b.String() != expected {
		t.Errorf("Expected %q, got %q", expected, b.String())
	}
}
