package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Ashenafi-pixel/gamecrafter-slot-console/gamemath"
	"github.com/Ashenafi-pixel/gamecrafter-slot-console/games/slot"
	"github.com/Ashenafi-pixel/gamecrafter-slot-console/prompt"
	"github.com/Ashenafi-pixel/gamecrafter-slot-console/round"
)

const (
	depositPrompt   = "Enter a Deposit Amount: "
	linesPrompt     = "Enter the number of lines to bet on (1-3): "
	betPrompt       = "Enter bet per line: "
	playAgainPrompt = "Do you want to play again (y/n)? "
)

// Outcome is the terminal state a session ended in.
type Outcome int

const (
	OutOfFunds Outcome = iota + 1
	PlayerQuit
	InputClosed
)

func (o Outcome) String() string {
	switch o {
	case OutOfFunds:
		return "out_of_funds"
	case PlayerQuit:
		return "player_quit"
	case InputClosed:
		return "input_closed"
	default:
		return "unknown"
	}
}

// Session is one player's run from deposit to a terminal outcome.
type Session struct {
	math    *gamemath.GameMath
	src     slot.Source
	in      prompt.LineReader
	out     io.Writer
	log     *zap.Logger
	balance decimal.Decimal
	ledger  *round.Ledger
}

// New wires a session. A nil logger discards logs.
func New(math *gamemath.GameMath, src slot.Source, in prompt.LineReader, out io.Writer, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		math:    math,
		src:     src,
		in:      in,
		out:     out,
		log:     log,
		balance: decimal.Zero,
	}
}

func (s *Session) Balance() decimal.Decimal { return s.balance }

// Ledger is nil until a deposit has been accepted.
func (s *Session) Ledger() *round.Ledger { return s.ledger }

// Run plays until the balance is gone, the player quits or input ends.
// End of input is a normal outcome; other read and write failures are returned.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	deposit, err := prompt.Ask(ctx, s.in, s.out, depositPrompt, ParseDeposit)
	if err != nil {
		return s.finish(InputClosed, err)
	}
	s.balance = deposit
	s.ledger = round.NewLedger(deposit)
	s.log = s.log.With(zap.String("session_id", s.ledger.SessionID()))
	fields := []zap.Field{zap.String("model_id", s.math.ModelID), zap.String("deposit", deposit.String())}
	if s.math.Integrity != nil {
		fields = append(fields, zap.String("content_hash", s.math.Integrity.ContentHash))
	}
	s.log.Info("session started", fields...)

	for {
		s.printf("You have a balance of $%s\n", s.balance)

		lines, err := prompt.Ask(ctx, s.in, s.out, linesPrompt, ParseLines)
		if err != nil {
			return s.finish(InputClosed, err)
		}
		bet, err := prompt.Ask(ctx, s.in, s.out, betPrompt, BetParser(s.balance, lines))
		if err != nil {
			return s.finish(InputClosed, err)
		}

		res := s.Play(lines, bet)
		s.printf("%s", slot.FormatRows(res.Rows))
		s.printf("You Won, $%s\n", res.Winnings)

		if !s.balance.IsPositive() {
			s.printf("You ran out of money\n")
			return s.finish(OutOfFunds, nil)
		}

		again, err := prompt.Ask(ctx, s.in, s.out, playAgainPrompt, func(v string) (bool, error) {
			return PlayAgain(v), nil
		})
		if err != nil {
			return s.finish(InputClosed, err)
		}
		if !again {
			return s.finish(PlayerQuit, nil)
		}
	}
}

// Play settles one spin: debit the stake, spin, evaluate, credit winnings.
// Callers validate bet and lines first.
func (s *Session) Play(lines int, bet decimal.Decimal) *round.Result {
	if s.ledger == nil {
		s.ledger = round.NewLedger(s.balance)
	}
	stake := bet.Mul(decimal.NewFromInt(int64(lines)))
	s.balance = s.balance.Sub(stake)

	rows := slot.Transpose(slot.Spin(s.math, s.src))
	eval := slot.Evaluate(s.math, rows, bet, lines)
	s.balance = s.balance.Add(eval.Winnings)

	r := s.ledger.Append(&round.Result{
		Lines:        lines,
		Bet:          bet,
		Stake:        stake,
		Winnings:     eval.Winnings,
		BalanceAfter: s.balance,
		Rows:         rows,
		LineWins:     eval.LineWins,
	})
	if ce := s.log.Check(zap.DebugLevel, "round settled"); ce != nil {
		ce.Write(zap.String("round_id", r.RoundID), zap.String("round", r.JSON()))
	}
	return r
}

// finish prints the summary and logs the outcome. EOF and cancellation are
// not errors for a console session.
func (s *Session) finish(o Outcome, err error) (Outcome, error) {
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		err = nil
	default:
		s.log.Error("session aborted", zap.Error(err))
		return o, fmt.Errorf("session: %w", err)
	}

	if s.ledger != nil {
		sum := s.ledger.Summary()
		s.printf("Spins: %d, wagered $%s, won $%s, final balance $%s\n",
			sum.Spins, sum.Wagered, sum.Won, sum.Balance)
		s.log.Info("session ended",
			zap.Stringer("outcome", o),
			zap.Int("spins", sum.Spins),
			zap.Int("win_spins", sum.WinSpins),
			zap.String("wagered", sum.Wagered.String()),
			zap.String("won", sum.Won.String()),
			zap.String("balance", sum.Balance.String()))
	}
	return o, err
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
