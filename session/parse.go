package session

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxLines is the number of rows a bet can cover.
const MaxLines = 3

// Input errors carry the text shown to the player before the re-prompt.
var (
	ErrInvalidDeposit = errors.New("Invalid Deposit amount, try again!")
	ErrInvalidLines   = errors.New("Invalid number of lines, try again!")
	ErrInvalidBet     = errors.New("Invalid bet, try again!")
)

// leading decimal number, optional exponent; trailing text is ignored.
var numberPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?`)

// maxExponent bounds the scale of accepted amounts. Comparing or
// multiplying a decimal rescales it to a power of ten of this size.
const maxExponent = 64

// parseNumber reads the numeric prefix of s ("10abc" is 10, "abc" is not a number).
func parseNumber(s string) (decimal.Decimal, bool) {
	m := numberPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	if e := d.Exponent(); e > maxExponent || e < -maxExponent {
		return decimal.Zero, false
	}
	return d, true
}

// ParseDeposit accepts any positive number.
func ParseDeposit(s string) (decimal.Decimal, error) {
	d, ok := parseNumber(s)
	if !ok || !d.IsPositive() {
		return decimal.Zero, ErrInvalidDeposit
	}
	return d, nil
}

// ParseLines accepts a number in (0, MaxLines], truncated to a whole line count.
func ParseLines(s string) (int, error) {
	d, ok := parseNumber(s)
	if !ok || !d.IsPositive() || d.GreaterThan(decimal.NewFromInt(MaxLines)) {
		return 0, ErrInvalidLines
	}
	n := int(d.IntPart())
	if n < 1 {
		return 0, ErrInvalidLines
	}
	return n, nil
}

// BetParser returns a parser accepting 0 < bet <= balance/lines. The bound
// is checked as bet*lines <= balance so an all-in stake is allowed exactly.
func BetParser(balance decimal.Decimal, lines int) func(string) (decimal.Decimal, error) {
	return func(s string) (decimal.Decimal, error) {
		bet, ok := parseNumber(s)
		if !ok || !bet.IsPositive() || lines <= 0 {
			return decimal.Zero, ErrInvalidBet
		}
		if bet.Mul(decimal.NewFromInt(int64(lines))).GreaterThan(balance) {
			return decimal.Zero, ErrInvalidBet
		}
		return bet, nil
	}
}

// PlayAgain reports whether the answer is the single affirmative token.
func PlayAgain(s string) bool {
	return strings.TrimSpace(s) == "y"
}
