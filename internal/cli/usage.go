package cli

import (
	"flag"
	"fmt"
	"os"
)

// Usage prints the usage information for the opcalc command
func Usage() {
	fmt.Fprintf(os.Stderr, `opcalc - interactive console calculator

Usage: opcalc [options]

opcalc runs an interactive session on standard input. It asks for a
calculator name and a set of operations, then presents a menu:

  1. List supported operations
  2. List input format
  3. Start calculation
  4. Exit

A calculation is a left-to-right expression terminated by '=', e.g.

  10 + 5 - 3 =

There is no operator precedence; operators apply in the order given.

Supported operations:
  +   Add
  -   Subtract
  *   Multiply
  /   Divide
  **  Power
  V   Root (n1 V n2 is the n2-th root of n1)

Options:
`)
	flag.PrintDefaults()
}
