package calc

import "math"

// Operation represents a named binary arithmetic operator selected by its
// input symbol. The six implementations form a closed set; New constructs
// the right one from a symbol token.
type Operation interface {
	Name() string
	Symbol() string
	SetName(name string) error
	SetSymbol(symbol string) error

	// Execute applies the operator to its two operands.
	Execute(a, b float64) (float64, error)

	// Clone returns an independent copy carrying the same name and symbol.
	// Calculators store clones so that prototype instances stay untouched.
	Clone() Operation
}

// details holds the state shared by every operation variant
type details struct {
	name   string
	symbol string
}

func (d *details) Name() string   { return d.name }
func (d *details) Symbol() string { return d.symbol }

func (d *details) SetName(name string) error {
	if name == "" {
		return newConfigError("Invalid operation name!")
	}
	d.name = name
	return nil
}

func (d *details) SetSymbol(symbol string) error {
	if symbol == "" {
		return newConfigError("Invalid operation symbol!")
	}
	d.symbol = symbol
	return nil
}

// AddOperation computes a + b
type AddOperation struct{ details }

func NewAddOperation() *AddOperation {
	return &AddOperation{details{name: "Add", symbol: "+"}}
}

func (o *AddOperation) Execute(a, b float64) (float64, error) {
	return a + b, nil
}

func (o *AddOperation) Clone() Operation {
	return &AddOperation{o.details}
}

// SubtractOperation computes a - b
type SubtractOperation struct{ details }

func NewSubtractOperation() *SubtractOperation {
	return &SubtractOperation{details{name: "Subtract", symbol: "-"}}
}

func (o *SubtractOperation) Execute(a, b float64) (float64, error) {
	return a - b, nil
}

func (o *SubtractOperation) Clone() Operation {
	return &SubtractOperation{o.details}
}

// MultiplyOperation computes a * b
type MultiplyOperation struct{ details }

func NewMultiplyOperation() *MultiplyOperation {
	return &MultiplyOperation{details{name: "Multiply", symbol: "*"}}
}

func (o *MultiplyOperation) Execute(a, b float64) (float64, error) {
	return a * b, nil
}

func (o *MultiplyOperation) Clone() Operation {
	return &MultiplyOperation{o.details}
}

// DivideOperation computes a / b and rejects a zero divisor
type DivideOperation struct{ details }

func NewDivideOperation() *DivideOperation {
	return &DivideOperation{details{name: "Divide", symbol: "/"}}
}

func (o *DivideOperation) Execute(a, b float64) (float64, error) {
	if b == 0 {
		return 0, newDomainError("Cannot divide by zero!")
	}
	return a / b, nil
}

func (o *DivideOperation) Clone() Operation {
	return &DivideOperation{o.details}
}

// PowerOperation computes a raised to the power of b. 0^0 is undefined and
// rejected rather than following the math.Pow convention of returning 1.
type PowerOperation struct{ details }

func NewPowerOperation() *PowerOperation {
	return &PowerOperation{details{name: "Power", symbol: "**"}}
}

func (o *PowerOperation) Execute(a, b float64) (float64, error) {
	if a == 0 && b == 0 {
		return 0, newDomainError("Cannot raise 0 to the power of 0!")
	}
	return math.Pow(a, b), nil
}

func (o *PowerOperation) Clone() Operation {
	return &PowerOperation{o.details}
}

// RootOperation computes the b-th root of a, i.e. a^(1/b). Roots of negative
// numbers are only defined here for positive integral degrees.
type RootOperation struct{ details }

func NewRootOperation() *RootOperation {
	return &RootOperation{details{name: "Root", symbol: "V"}}
}

func (o *RootOperation) Execute(a, b float64) (float64, error) {
	if a < 0 && b < 0 {
		return 0, newDomainError("Cannot take negative root of negative number!")
	}
	if a < 0 && math.Trunc(b) != b {
		return 0, newDomainError("Cannot take fractional root of negative number")
	}
	return math.Pow(a, 1/b), nil
}

func (o *RootOperation) Clone() Operation {
	return &RootOperation{o.details}
}

// New creates the operation variant registered for the given symbol.
func New(symbol string) (Operation, error) {
	switch symbol {
	case "+":
		return NewAddOperation(), nil
	case "-":
		return NewSubtractOperation(), nil
	case "*":
		return NewMultiplyOperation(), nil
	case "/":
		return NewDivideOperation(), nil
	case "**":
		return NewPowerOperation(), nil
	case "V":
		return NewRootOperation(), nil
	default:
		return nil, newConfigError("Invalid operator!")
	}
}

// ValidSymbol reports whether symbol names one of the six known operations.
func ValidSymbol(symbol string) bool {
	switch symbol {
	case "+", "-", "*", "/", "**", "V":
		return true
	}
	return false
}
