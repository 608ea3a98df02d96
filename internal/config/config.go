package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Postgres Postgres
	Metrics  Metrics
	Probe    Probe
}

// Load читает переменные окружения, предварительно подхватывая .env файл,
// если он есть.
func Load() (Config, error) {
	_ = godotenv.Load()

	return parse()
}

func parse() (Config, error) {
	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
