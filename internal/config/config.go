// Package config loads Dragon Repeller settings from the environment and
// command-line flags.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config holds the application configuration.
type Config struct {
	SaveDir      string `env:"DRAGON_SAVE_DIR" envDefault:".saves"`
	SaveSlot     string `env:"DRAGON_SAVE_SLOT" envDefault:"default"`
	Store        string `env:"DRAGON_STORE" envDefault:"file"`
	SQLitePath   string `env:"DRAGON_SQLITE_PATH" envDefault:".saves/dragon.db"`
	ContentFile  string `env:"DRAGON_CONTENT_FILE"`
	Seed         uint64 `env:"DRAGON_SEED"`
	LogFile      string `env:"DRAGON_LOG_FILE"`
	HTTPAddr     string `env:"DRAGON_HTTP_ADDR" envDefault:":8080"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"DRAGON_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

// LoadConfig reads the environment, then lets flags in args override it.
func LoadConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.SaveDir, "save-dir", cfg.SaveDir, "directory for file saves")
	fs.StringVar(&cfg.SaveSlot, "slot", cfg.SaveSlot, "save slot name")
	fs.StringVar(&cfg.Store, "store", cfg.Store, "save backend: file or sqlite")
	fs.StringVar(&cfg.SQLitePath, "sqlite", cfg.SQLitePath, "sqlite database path")
	fs.StringVar(&cfg.ContentFile, "content", cfg.ContentFile, "override content YAML file")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that flags and env cannot constrain.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreFile, StoreSQLite)
	}
	if c.SaveSlot == "" {
		return fmt.Errorf("save slot must not be empty")
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
