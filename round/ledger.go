package round

import (
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/Ashenafi-pixel/gamecrafter-slot-console/gamemath"
	"github.com/Ashenafi-pixel/gamecrafter-slot-console/games/slot"
)

// Result records one settled spin.
type Result struct {
	RoundID      string              `json:"roundId"`
	Lines        int                 `json:"lines"`
	Bet          decimal.Decimal     `json:"bet"`
	Stake        decimal.Decimal     `json:"stake"`
	Winnings     decimal.Decimal     `json:"winnings"`
	BalanceAfter decimal.Decimal     `json:"balanceAfter"`
	Rows         [][]gamemath.Symbol `json:"rows"`
	LineWins     []slot.LineWin      `json:"lineWins,omitempty"`
	SettledAt    time.Time           `json:"settledAt"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSON renders r for logs. Encoding errors are returned as the string.
func (r *Result) JSON() string {
	b, err := json.Marshal(r)
	if err != nil {
		return err.Error()
	}
	return string(b)
}

// Summary totals a session's rounds.
type Summary struct {
	Spins    int             `json:"spins"`
	Wagered  decimal.Decimal `json:"wagered"`
	Won      decimal.Decimal `json:"won"`
	Deposit  decimal.Decimal `json:"deposit"`
	Balance  decimal.Decimal `json:"balance"`
	WinSpins int             `json:"winSpins"`
}

// Ledger keeps the settled rounds of one session in memory. Not safe for
// concurrent use; a session owns its ledger.
type Ledger struct {
	sessionID string
	deposit   decimal.Decimal
	results   []*Result
	now       func() time.Time
}

func NewLedger(deposit decimal.Decimal) *Ledger {
	return &Ledger{
		sessionID: uuid.New().String(),
		deposit:   deposit,
		now:       time.Now,
	}
}

func (l *Ledger) SessionID() string { return l.sessionID }

// Append stamps r with a round id and settle time if missing and stores it.
func (l *Ledger) Append(r *Result) *Result {
	if r.RoundID == "" {
		r.RoundID = uuid.New().String()
	}
	if r.SettledAt.IsZero() {
		r.SettledAt = l.now()
	}
	l.results = append(l.results, r)
	return r
}

func (l *Ledger) Summary() Summary {
	s := Summary{
		Wagered: decimal.Zero,
		Won:     decimal.Zero,
		Deposit: l.deposit,
		Balance: l.deposit,
	}
	for _, r := range l.results {
		s.Spins++
		s.Wagered = s.Wagered.Add(r.Stake)
		s.Won = s.Won.Add(r.Winnings)
		if r.Winnings.IsPositive() {
			s.WinSpins++
		}
		s.Balance = r.BalanceAfter
	}
	return s
}
