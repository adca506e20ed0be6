package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by the application.
const EnvPrefix = "INV"

// Config holds the defaults of the global flags, read from INV_* environment variables.
type Config struct {
	File     string `envconfig:"FILE" default:"inventory.txt"`
	Currency string `envconfig:"CURRENCY" default:"ZAR"`
	Strict   bool   `envconfig:"STRICT" default:"false"`
	Plain    bool   `envconfig:"PLAIN" default:"false"`
	Verbose  bool   `envconfig:"VERBOSE" default:"false"`
}

// LoadConfig loads envFile into the environment if it exists, then reads the INV_* variables.
// Variables already set in the environment take precedence over the file.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.File == "" {
		return errors.New("the inventory file cannot be empty")
	}
	return checkCurrency(c.Currency)
}

func checkCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}
