package config

import "time"

// Postgres описывает подключение к хранилищу объявлений.
type Postgres struct {
	DSN             string        `env:"PG_DSN,notEmpty"         json:"-"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS"       envDefault:"5"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS"       envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME"    envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"PG_CONN_MAX_IDLE_TIME"   envDefault:"1m"`
	ConnectTimeout  time.Duration `env:"PG_CONNECT_TIMEOUT"      envDefault:"5s"`
	PingTimeout     time.Duration `env:"PG_READY_PING_TIMEOUT"   envDefault:"1s"`
}
