package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeo/internal/errors"
	"github.com/samdwyer/dungeo/internal/game"
	"github.com/samdwyer/dungeo/internal/gamedata"
	"github.com/samdwyer/dungeo/internal/telemetry"
	"github.com/samdwyer/dungeo/internal/ui"
)

var (
	seed        int64
	delay       string
	logFile     string
	noTelemetry bool
)

func init() {
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	rootCmd.Flags().StringVar(&delay, "delay", "", "pause before the monster acts, e.g. 500ms (default 1s)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of discarding them")
	rootCmd.Flags().BoolVar(&noTelemetry, "no-telemetry", false, "disable trace export")
}

func runGame(cmd *cobra.Command, args []string) error {
	// Load .env file for local development
	// This makes HONEYCOMB_DUNGEO_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := gameConfig(cmd)
	if err != nil {
		return err
	}

	// The terminal belongs to tcell from here on
	closeLog, err := redirectLog(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdown, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:          !noTelemetry,
		HoneycombAPIKey:  os.Getenv("HONEYCOMB_DUNGEO_API_KEY"),
		HoneycombDataset: os.Getenv("HONEYCOMB_DUNGEO_DATASET"),
	})
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return fmt.Errorf("failed to load game data: %w", err)
	}

	app, err := ui.NewApp(catalog, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// gameConfig reads the environment and lets explicit flags win.
func gameConfig(cmd *cobra.Command) (game.Config, error) {
	cfg, err := game.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("delay") {
		d, err := parseDelay(delay)
		if err != nil {
			return cfg, err
		}
		cfg.MonsterTurnDelay = d
	}
	return cfg, nil
}

// redirectLog sends the standard logger to path, or discards it.
func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

// parseDelay parses a monster turn delay flag.
func parseDelay(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.InvalidArgumentf("invalid --delay %q: %v", s, err)
	}
	if d < 0 {
		return 0, errors.InvalidArgumentf("--delay must not be negative, got %s", d)
	}
	return d, nil
}
