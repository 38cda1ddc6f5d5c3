package slot

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Ashenafi-pixel/gamecrafter-slot-console/gamemath"
)

// Source picks a uniform random int in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// CryptoSource draws from a CSPRNG. A nil Reader means crypto/rand.Reader.
type CryptoSource struct {
	Reader io.Reader
}

// Intn returns a uniform random int in [0, n). It panics if the reader fails.
func (s CryptoSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r := s.Reader
	if r == nil {
		r = rand.Reader
	}
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		panic("slot: read random: " + err.Error())
	}
	return int(v.Int64())
}

// Grid is column-major: Grid[col][row].
type Grid [][]gamemath.Symbol

// LineWin is a paying line (1-based).
type LineWin struct {
	Line   int             `json:"line"`
	Symbol gamemath.Symbol `json:"symbol"`
	Payout decimal.Decimal `json:"payout"`
}

// Result is the evaluated outcome of one spin.
type Result struct {
	Winnings decimal.Decimal `json:"winnings"`
	LineWins []LineWin       `json:"lineWins,omitempty"`
}

// Spin fills every column with math.Rows symbols drawn without replacement
// from a fresh copy of the reel pool.
func Spin(math *gamemath.GameMath, src Source) Grid {
	grid := make(Grid, math.Cols)
	for c := range grid {
		pool := math.Pool()
		col := make([]gamemath.Symbol, math.Rows)
		for r := range col {
			i := src.Intn(len(pool))
			col[r] = pool[i]
			pool = append(pool[:i], pool[i+1:]...)
		}
		grid[c] = col
	}
	return grid
}

// Transpose swaps rows and columns. Transpose(Transpose(g)) == g for
// rectangular g.
func Transpose(g [][]gamemath.Symbol) [][]gamemath.Symbol {
	if len(g) == 0 {
		return [][]gamemath.Symbol{}
	}
	out := make([][]gamemath.Symbol, len(g[0]))
	for i := range out {
		out[i] = make([]gamemath.Symbol, len(g))
		for j := range g {
			out[i][j] = g[j][i]
		}
	}
	return out
}

// Evaluate pays bet*multiplier for each of the first lines rows whose
// symbols are all identical. Partial matches pay nothing.
func Evaluate(math *gamemath.GameMath, rows [][]gamemath.Symbol, bet decimal.Decimal, lines int) Result {
	if lines > len(rows) {
		lines = len(rows)
	}
	res := Result{Winnings: decimal.Zero}
	for i := 0; i < lines; i++ {
		row := rows[i]
		if len(row) == 0 || !allSame(row) {
			continue
		}
		payout := bet.Mul(decimal.NewFromInt(math.Multiplier(row[0])))
		res.Winnings = res.Winnings.Add(payout)
		res.LineWins = append(res.LineWins, LineWin{Line: i + 1, Symbol: row[0], Payout: payout})
	}
	return res
}

func allSame(row []gamemath.Symbol) bool {
	for _, s := range row[1:] {
		if s != row[0] {
			return false
		}
	}
	return true
}

// FormatRows renders one line per row, symbols separated by " | ".
func FormatRows(rows [][]gamemath.Symbol) string {
	var b strings.Builder
	for _, row := range rows {
		for i, s := range row {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(string(s))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
