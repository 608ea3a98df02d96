package config

import "log/slog"

type App struct {
	Name     string     `env:"APP_NAME"      envDefault:"squad_finder"`
	Version  string     `env:"APP_VERSION"   envDefault:"dev"`
	LogLevel slog.Level `env:"APP_LOG_LEVEL" envDefault:"info"`
	LogJSON  bool       `env:"APP_LOG_JSON"  envDefault:"false"`
}
