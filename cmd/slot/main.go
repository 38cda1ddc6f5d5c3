package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Ashenafi-pixel/gamecrafter-slot-console/config"
	"github.com/Ashenafi-pixel/gamecrafter-slot-console/gamemath"
	"github.com/Ashenafi-pixel/gamecrafter-slot-console/games/slot"
	"github.com/Ashenafi-pixel/gamecrafter-slot-console/logging"
	"github.com/Ashenafi-pixel/gamecrafter-slot-console/prompt"
	"github.com/Ashenafi-pixel/gamecrafter-slot-console/session"
)

func main() {
	// .env in cwd, then the user's local overrides; both optional.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	// The first Ctrl-C cancels the session; restore default handling so a
	// second one kills a process still blocked on stdin.
	go func() {
		<-ctx.Done()
		stop()
	}()

	if err := run(ctx, cfg, os.Stdin, os.Stdout, nil); err != nil {
		fmt.Fprintf(os.Stderr, "slot: %v\n", err)
		os.Exit(1)
	}
}

// run plays one session on in/out. A nil logConsole sends logs to stderr.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logConsole io.Writer) error {
	log, err := logging.New(logging.Config{
		Level:   cfg.LogLevel,
		App:     cfg.App,
		Dir:     cfg.LogDir,
		File:    cfg.LogFile,
		Console: logConsole,
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	store := gamemath.NewStore()
	math := store.Get(cfg.ModelID)
	if math == nil {
		return fmt.Errorf("unknown model %q (available: %s)", cfg.ModelID, strings.Join(store.ModelIDs(), ", "))
	}

	var src slot.Source = slot.CryptoSource{}
	if cfg.Seed != 0 {
		src = rand.New(rand.NewSource(cfg.Seed))
		log.Warn("using seeded rng", zap.Int64("seed", cfg.Seed))
	}

	outcome, err := session.New(math, src, prompt.NewScanner(in), out, log).Run(ctx)
	if err != nil {
		return err
	}
	log.Debug("exit", zap.Stringer("outcome", outcome))
	return nil
}
