package main

import (
	"os"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings for a cart session run.
type Config struct {
	LogLevel        string             `envconfig:"CART_LOG_LEVEL"        default:"info"`
	DiscountPercent float64            `envconfig:"CART_DISCOUNT_PERCENT" default:"0"`
	Promotions      map[string]float64 `envconfig:"CART_PROMOTIONS"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "process environment")
	}
	return &cfg, nil
}
