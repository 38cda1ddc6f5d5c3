// Package prompt reads console answers and re-asks until they validate.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// LineReader yields one line of user input per call, without the newline.
type LineReader interface {
	ReadLine() (string, error)
}

// Scanner adapts an io.Reader to LineReader.
type Scanner struct {
	sc *bufio.Scanner
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r)}
}

// ReadLine returns io.EOF once the input is exhausted.
func (s *Scanner) ReadLine() (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.sc.Text(), "\r"), nil
}

// Ask writes question, reads a line and hands it to parse. A parse error is
// written to out and the question is asked again. Only read errors and
// context cancellation end the loop without a value; a line read after
// cancellation is discarded.
func Ask[T any](ctx context.Context, in LineReader, out io.Writer, question string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		if _, err := io.WriteString(out, question); err != nil {
			return zero, fmt.Errorf("write prompt: %w", err)
		}
		line, err := in.ReadLine()
		if err != nil {
			return zero, err
		}
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		v, err := parse(line)
		if err != nil {
			if _, werr := fmt.Fprintln(out, err.Error()); werr != nil {
				return zero, fmt.Errorf("write prompt: %w", werr)
			}
			continue
		}
		return v, nil
	}
}
