package cli

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// TokenReader reads whitespace-delimited tokens from a stream while also
// supporting line-oriented reads and discarding the rest of a line, which
// the setup and menu loops use to recover from bad input.
type TokenReader struct {
	r *bufio.Reader
}

// NewTokenReader wraps r in a TokenReader.
func NewTokenReader(r io.Reader) *TokenReader {
	return &TokenReader{r: bufio.NewReader(r)}
}

// ReadLine reads one full line, without the trailing newline.
func (t *TokenReader) ReadLine() (string, error) {
	line, err := t.r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	return line, nil
}

// Token skips leading whitespace and reads the next token. The terminating
// whitespace stays in the stream so DiscardLine sees the token's own line.
func (t *TokenReader) Token() (string, error) {
	var b strings.Builder
	for {
		ch, _, err := t.r.ReadRune()
		if err != nil {
			if b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(ch) {
			if b.Len() > 0 {
				_ = t.r.UnreadRune()
				return b.String(), nil
			}
			continue
		}
		b.WriteRune(ch)
	}
}

// DiscardLine drops everything up to and including the next newline.
func (t *TokenReader) DiscardLine() {
	for {
		ch, _, err := t.r.ReadRune()
		if err != nil || ch == '\n' {
			return
		}
	}
}
