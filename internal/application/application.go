package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"squad_finder/internal/config"
	"squad_finder/internal/infrastructure/persistence"
	"squad_finder/internal/server"
	"squad_finder/pkg/application/connectors"
	"squad_finder/pkg/application/modules"
	"squad_finder/pkg/contextx"
	"squad_finder/pkg/logx"
)

// Run поднимает пул соединений с БД, API, метрики и пробы и блокируется до
// отмены ctx или падения одного из серверов.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log := logx.NewLogger(os.Stdout, cfg.App.LogLevel, cfg.App.LogJSON).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Postgres.ConnMaxIdleTime,
		ConnectTimeout:  cfg.Postgres.ConnectTimeout,
		PingTimeout:     cfg.Postgres.PingTimeout,
	}

	db, err := pg.Client(ctx)
	if err != nil {
		return fmt.Errorf("pg.Client: %w", err)
	}
	defer pg.Close(ctx)

	s := server.NewServer(
		server.NewGameServer(persistence.NewGameRepository(db)),
		server.NewAdServer(persistence.NewAdRepository(db)),
	)

	handler := server.NewRouter(s, server.RouterOptions{
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
		LogFieldMaxLen:     cfg.HTTP.LogFieldMaxLen,
		LogRawBodies:       cfg.HTTP.LogRawBodies,
	})

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:   cfg.HTTP.ListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, handler)
	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Disabled:      !cfg.Metrics.Enabled,
	}.Run(ctx, g)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		ReadyCheck:    pg.Ping,
	}.Run(ctx, g)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}
