package mcp

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mamaar/opcalc/pkg/calc"
)

// CalcServer holds the shared state for the MCP tool handlers: a registry
// of named calculators keyed by id, and the process-wide success counter
// every registered calculator reports to.
type CalcServer struct {
	mu      sync.RWMutex
	calcs   map[string]*calc.Calculator
	counter *calc.Counter
	logger  *slog.Logger
}

// NewCalcServer creates a new CalcServer with the given logger.
func NewCalcServer(logger *slog.Logger) *CalcServer {
	return &CalcServer{
		calcs:   make(map[string]*calc.Calculator),
		counter: calc.NewCounter(),
		logger:  logger,
	}
}

// CreateCalculator builds a calculator from the given operation symbols,
// registers it, and returns its id. Symbols are validated against the fixed
// operation table; an unknown symbol fails the whole call.
func (s *CalcServer) CreateCalculator(name string, symbols []string) (string, *calc.Calculator, error) {
	ops := make([]calc.Operation, 0, len(symbols))
	for _, symbol := range symbols {
		op, err := calc.New(symbol)
		if err != nil {
			return "", nil, fmt.Errorf("operation %q: %w", symbol, err)
		}
		ops = append(ops, op)
	}
	c, err := calc.NewCalculator(name, ops, s.counter)
	if err != nil {
		return "", nil, err
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.calcs[id] = c
	s.mu.Unlock()

	s.logger.Info("calculator created", "id", id, "name", name, "operations", len(ops))
	return id, c, nil
}

// GetCalculator returns the registered calculator for id.
func (s *CalcServer) GetCalculator(id string) (*calc.Calculator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.calcs[id]
	if !ok {
		return nil, fmt.Errorf("no calculator with id %q, call create_calculator first", id)
	}
	return c, nil
}

// CalculatorCount returns the number of registered calculators.
func (s *CalcServer) CalculatorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.calcs)
}

// SuccessfulCalculations returns the shared success count across all
// registered calculators.
func (s *CalcServer) SuccessfulCalculations() int64 {
	return s.counter.Value()
}
