package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	App      string `env:"SLOT_APP" envDefault:"slot"`
	ModelID  string `env:"SLOT_MODEL_ID" envDefault:"classic_3x3"`
	Seed     int64  `env:"SLOT_SEED" envDefault:"0"` // 0 draws from crypto/rand
	LogLevel string `env:"SLOT_LOG_LEVEL" envDefault:"warn"`
	LogDir   string `env:"SLOT_LOG_DIR" envDefault:"logs"`
	LogFile  bool   `env:"SLOT_LOG_FILE" envDefault:"false"`
}

// Load reads configuration from the environment. Call godotenv first to
// pick up a .env file.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
