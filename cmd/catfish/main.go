package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/catfish-car-tetris/internal/audio"
	"github.com/ugaemi/catfish-car-tetris/internal/config"
	"github.com/ugaemi/catfish-car-tetris/internal/game"
	"github.com/ugaemi/catfish-car-tetris/internal/store"
	"github.com/ugaemi/catfish-car-tetris/internal/ui"
)

const connectTimeout = 5 * time.Second

func main() {
	cfg := config.Load()
	closeLog := setupLogger(cfg)
	defer closeLog()

	if err := run(cfg); err != nil {
		slog.Error("catfish failed", "error", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tuning, err := game.LoadTuning(cfg.TuningFile)
	if err != nil {
		return err
	}

	scores := openStore(ctx, cfg)
	defer scores.Close()

	var sound ui.Sound
	if !cfg.Mute {
		player := audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			slog.Warn("audio unavailable, playing muted", "error", err)
		} else {
			defer player.Cleanup()
			sound = player
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	app := ui.NewApp(screen, ui.Options{
		Store:    scores,
		Sound:    sound,
		Tuning:   tuning,
		Rand:     game.NewRand(cfg.Seed),
		TickRate: cfg.TickRate,
	})

	slog.Info("catfish starting", "tick_rate", cfg.TickRate, "mute", cfg.Mute)
	return app.Run(ctx)
}

// openStore picks the high-score backend. A postgres backend that cannot be
// reached falls back to the JSON file.
func openStore(ctx context.Context, cfg *config.Config) store.HighScoreStore {
	backend := cfg.ScoresBackend
	if backend == "auto" {
		backend = "file"
		if cfg.DatabaseURL != "" {
			backend = "postgres"
		}
	}

	switch backend {
	case "memory":
		return store.NewMemoryStore()
	case "postgres":
		connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()

		pg, err := store.NewPostgresStore(connCtx, cfg.DatabaseURL)
		if err == nil {
			slog.Info("using postgres high scores")
			return pg
		}
		slog.Warn("postgres unavailable, using high score file", "error", err, "file", cfg.ScoresFile)
	case "file":
	default:
		slog.Warn("unknown scores backend, using high score file", "backend", cfg.ScoresBackend)
	}
	return store.NewFileStore(cfg.ScoresFile)
}

// setupLogger routes slog to LOG_FILE, since the terminal belongs to the game.
// The returned func closes the log file.
func setupLogger(cfg *config.Config) func() {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	w, closeFn, err := openLogOutput(cfg.LogFile, os.Stderr)

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(h))
	if err != nil {
		slog.Warn("cannot open log file, logging to stderr", "file", cfg.LogFile, "error", err)
	}
	return closeFn
}

// openLogOutput opens path for appending. "-" discards output; a file that
// cannot be opened yields fallback along with the error.
func openLogOutput(path string, fallback io.Writer) (io.Writer, func(), error) {
	if path == "-" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fallback, func() {}, err
	}
	return f, func() { f.Close() }, nil
}
