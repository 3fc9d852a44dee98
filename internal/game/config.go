package game

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultMonsterTurnDelay is the pause between the player's action and the
// monster's reply.
const DefaultMonsterTurnDelay = time.Second

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible boards and
	// fights. A seed of 0 means a random seed will be generated.
	Seed int64

	// MonsterTurnDelay is how long the monster waits before acting.
	// Zero resolves the monster turn immediately.
	MonsterTurnDelay time.Duration

	// GodModeAvailable offers the God Mode toggle in Settings.
	GodModeAvailable bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{MonsterTurnDelay: DefaultMonsterTurnDelay}
}

// ConfigFromEnv reads DUNGEO_SEED, DUNGEO_MONSTER_DELAY (a Go duration) and
// DUNGEO_GOD_MODE on top of DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("DUNGEO_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid DUNGEO_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv("DUNGEO_MONSTER_DELAY"); v != "" {
		delay, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid DUNGEO_MONSTER_DELAY %q: %w", v, err)
		}
		if delay < 0 {
			return cfg, fmt.Errorf("DUNGEO_MONSTER_DELAY must not be negative, got %s", delay)
		}
		cfg.MonsterTurnDelay = delay
	}

	if v := os.Getenv("DUNGEO_GOD_MODE"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid DUNGEO_GOD_MODE %q: %w", v, err)
		}
		cfg.GodModeAvailable = enabled
	}

	return cfg, nil
}
