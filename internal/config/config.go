package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, filled from the environment.
type Config struct {
	// StorePath is the SQLite file backing the persistent store.
	StorePath string `env:"DENTALFLOW_STORE" envDefault:"dentalflow.db"`
	// UUIDIDs switches record id generation from the historical "p<n>"/"i<n>"
	// scheme to UUIDs. Off by default for store compatibility.
	UUIDIDs bool `env:"DENTALFLOW_UUID_IDS" envDefault:"false"`
}

// Load reads an optional .env file, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
