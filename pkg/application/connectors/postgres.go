package connectors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"

	"squad_finder/pkg/logx"
)

var errNotConnected = errors.New("postgres: not connected")

type Postgres struct {
	value           *sqlx.DB
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// ConnectTimeout bounds the first connection, PingTimeout every Ping.
	// Zero means no timeout.
	ConnectTimeout time.Duration
	PingTimeout    time.Duration
	init           sync.Once
	initErr        error
}

// Client opens the pool on first use and returns the same handle afterwards.
func (p *Postgres) Client(ctx context.Context) (*sqlx.DB, error) {
	p.init.Do(func() {
		connectCtx, cancel := withTimeout(ctx, p.ConnectTimeout)
		defer cancel()

		db, err := sqlx.ConnectContext(connectCtx, "pgx", p.DSN)
		if err != nil {
			p.initErr = fmt.Errorf("sqlx.ConnectContext: %w", err)

			return
		}

		db.SetMaxOpenConns(p.MaxOpenConns)
		db.SetMaxIdleConns(p.MaxIdleConns)
		db.SetConnMaxLifetime(p.ConnMaxLifetime)
		db.SetConnMaxIdleTime(p.ConnMaxIdleTime)

		p.value = db

		logger(ctx).Info("postgres connected", slog.String("database", p.database()))
	})

	return p.value, p.initErr
}

func (p *Postgres) Ping(ctx context.Context) error {
	if p.value == nil {
		return errNotConnected
	}

	ctx, cancel := withTimeout(ctx, p.PingTimeout)
	defer cancel()

	if err := p.value.PingContext(ctx); err != nil {
		return fmt.Errorf("db.PingContext: %w", err)
	}

	return nil
}

func (p *Postgres) Close(ctx context.Context) {
	if p.value == nil {
		return
	}

	if err := p.value.Close(); err != nil {
		logger(ctx).Error("postgresClient.Close", logx.Error(err))
	}

	logger(ctx).Info("postgres disconnected", slog.String("database", p.database()))
}

func (p *Postgres) database() string {
	u, err := url.Parse(p.DSN)
	if err != nil {
		return ""
	}

	return u.Path
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}
