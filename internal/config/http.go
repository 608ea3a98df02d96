package config

import "time"

type HTTP struct {
	ListenAddress      string        `env:"HTTP_LISTEN_ADDRESS"       envDefault:":3333"`
	ShutdownTimeout    time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT"     envDefault:"10s"`
	CORSAllowedOrigins []string      `env:"HTTP_CORS_ALLOWED_ORIGINS" envSeparator:","`
	LogFieldMaxLen     int           `env:"HTTP_LOG_FIELD_MAX_LEN"    envDefault:"4096"`
	LogRawBodies       bool          `env:"HTTP_LOG_RAW_BODIES"       envDefault:"false"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	Enabled       bool   `env:"METRICS_ENABLED"        envDefault:"true"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}
