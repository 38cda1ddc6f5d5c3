package session

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDeposit(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{"100", "100", false},
		{" 12.50 ", "12.5", false},
		{"10abc", "10", false},
		{".5", "0.5", false},
		{"1e2", "100", false},
		{"0", "", true},
		{"-5", "", true},
		{"abc", "", true},
		{"", "", true},
		{"   ", "", true},
		{"1e2000000000", "", true},
		{"1e-200000000", "", true},
		{"1e99999999999", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDeposit(tt.in)
			if tt.err {
				if !errors.Is(err, ErrInvalidDeposit) {
					t.Fatalf("ParseDeposit(%q) err = %v want ErrInvalidDeposit", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDeposit(%q): %v", tt.in, err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ParseDeposit(%q) = %s want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLines(t *testing.T) {
	tests := []struct {
		in   string
		want int
		err  bool
	}{
		{"1", 1, false},
		{"2", 2, false},
		{"3", 3, false},
		{"3.0", 3, false},
		{"2.5", 2, false},
		{"2 lines", 2, false},
		{"0", 0, true},
		{"0.5", 0, true},
		{"4", 0, true},
		{"3.01", 0, true},
		{"-1", 0, true},
		{"x", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLines(tt.in)
			if tt.err {
				if !errors.Is(err, ErrInvalidLines) {
					t.Fatalf("ParseLines(%q) err = %v want ErrInvalidLines", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseLines(%q) = %d, %v want %d", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestBetParser(t *testing.T) {
	balance := decimal.NewFromInt(100)
	tests := []struct {
		name  string
		lines int
		in    string
		ok    bool
	}{
		{"within balance", 2, "10", true},
		{"exactly balance over lines", 2, "50", true},
		{"just over", 2, "50.01", false},
		{"thirds all-in", 3, "33.33", true},
		{"thirds over", 3, "33.34", false},
		{"zero", 1, "0", false},
		{"negative", 1, "-1", false},
		{"not a number", 1, "ten", false},
		{"no lines", 0, "1", false},
		{"huge exponent", 1, "1e2000000000", false},
		{"tiny exponent", 1, "1e-200000000", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BetParser(balance, tt.lines)(tt.in)
			if tt.ok {
				if err != nil {
					t.Fatalf("bet %q lines %d: %v", tt.in, tt.lines, err)
				}
				if !got.Equal(decimal.RequireFromString(tt.in)) {
					t.Errorf("bet = %s want %s", got, tt.in)
				}
				return
			}
			if !errors.Is(err, ErrInvalidBet) {
				t.Errorf("bet %q lines %d: err = %v want ErrInvalidBet", tt.in, tt.lines, err)
			}
		})
	}
}

func TestPlayAgain(t *testing.T) {
	for in, want := range map[string]bool{"y": true, " y ": true, "Y": false, "yes": false, "n": false, "": false} {
		if got := PlayAgain(in); got != want {
			t.Errorf("PlayAgain(%q) = %v want %v", in, got, want)
		}
	}
}
