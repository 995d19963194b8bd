package calc

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// tokenFunc yields the next whitespace-delimited token, or io.EOF when the
// source is exhausted.
type tokenFunc func() (string, error)

// Evaluate runs one interactive calculation over sc, which must split on
// words (bufio.ScanWords). The grammar is a strict left-to-right fold:
//
//	n1 op n2 op n3 ... =
//
// Evaluate consumes tokens up to and including the terminating "=", so the
// scanner can be shared with an enclosing menu loop. On success the shared
// counter is incremented and the result returned; on error the counter is
// untouched and the running result discarded.
func (c *Calculator) Evaluate(sc *bufio.Scanner) (float64, error) {
	return c.fold(func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return sc.Text(), nil
	})
}

// EvaluateString evaluates a complete expression held in a single string,
// using the same grammar as Evaluate. The terminating "=" is required.
func (c *Calculator) EvaluateString(expr string) (float64, error) {
	fields := strings.Fields(expr)
	i := 0
	return c.fold(func() (string, error) {
		if i >= len(fields) {
			return "", io.EOF
		}
		tok := fields[i]
		i++
		return tok, nil
	})
}

// EvaluateTokens runs one calculation pulling tokens from next. The console
// driver uses this directly so that an expression can continue on the same
// input stream the menu reads from.
func (c *Calculator) EvaluateTokens(next func() (string, error)) (float64, error) {
	return c.fold(next)
}

func (c *Calculator) fold(next tokenFunc) (float64, error) {
	result, err := readNumber(next)
	if err != nil {
		return 0, err
	}
	for {
		tok, err := next()
		if err != nil {
			return 0, newInputError(err, "expression ended before '='")
		}
		if tok == "=" {
			break
		}
		operand, err := readNumber(next)
		if err != nil {
			return 0, err
		}
		result, err = c.step(result, operand, tok)
		if err != nil {
			return 0, err
		}
	}
	c.successes.Increment()
	return result, nil
}

func readNumber(next tokenFunc) (float64, error) {
	tok, err := next()
	if err != nil {
		return 0, newInputError(err, "expression ended before '='")
	}
	n, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, newInputError(err, "Couldn't convert to number!")
	}
	return n, nil
}
