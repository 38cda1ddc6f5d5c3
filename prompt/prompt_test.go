package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
)

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, errors.New("positive number please")
	}
	return n, nil
}

func TestAsk_RetriesUntilValid(t *testing.T) {
	in := NewScanner(strings.NewReader("abc\n-3\n42\n"))
	out := &bytes.Buffer{}
	got, err := Ask(context.Background(), in, out, "n? ", parsePositive)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d want 42", got)
	}
	if c := strings.Count(out.String(), "n? "); c != 3 {
		t.Errorf("asked %d times want 3: %q", c, out.String())
	}
	if c := strings.Count(out.String(), "positive number please\n"); c != 2 {
		t.Errorf("error shown %d times want 2: %q", c, out.String())
	}
}

func TestAsk_EOF(t *testing.T) {
	in := NewScanner(strings.NewReader("nope\n"))
	_, err := Ask(context.Background(), in, io.Discard, "n? ", parsePositive)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v want io.EOF", err)
	}
}

func TestAsk_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := &bytes.Buffer{}
	_, err := Ask(ctx, NewScanner(strings.NewReader("1\n")), out, "n? ", parsePositive)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Errorf("cancelled Ask wrote %q", out.String())
	}
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestAsk_WriteError(t *testing.T) {
	_, err := Ask(context.Background(), NewScanner(strings.NewReader("1\n")), errWriter{}, "n? ", parsePositive)
	if err == nil {
		t.Fatal("expected write error")
	}
}

func TestScanner_StripsCarriageReturn(t *testing.T) {
	s := NewScanner(strings.NewReader("y\r\nn\n"))
	line, err := s.ReadLine()
	if err != nil || line != "y" {
		t.Fatalf("ReadLine = %q, %v", line, err)
	}
	line, err = s.ReadLine()
	if err != nil || line != "n" {
		t.Fatalf("ReadLine = %q, %v", line, err)
	}
	if _, err := s.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

// cancelOnRead cancels the context while the line is being read.
type cancelOnRead struct {
	cancel context.CancelFunc
	line   string
}

func (c cancelOnRead) ReadLine() (string, error) {
	c.cancel()
	return c.line, nil
}

func TestAsk_CancelledDuringRead(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	called := false
	_, err := Ask(ctx, cancelOnRead{cancel: cancel, line: "5"}, io.Discard, "n? ", func(s string) (int, error) {
		called = true
		return parsePositive(s)
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v want context.Canceled", err)
	}
	if called {
		t.Error("line read after cancellation was parsed")
	}
}
