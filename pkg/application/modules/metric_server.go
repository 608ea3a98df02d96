package modules

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"squad_finder/pkg/metrics"
)

// MetricServer exposes /metrics on its own port. A disabled server is not
// started at all, so the port stays free.
type MetricServer struct {
	ListenAddress string
	Disabled      bool
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	if m.Disabled {
		logger(ctx).Info("metrics server disabled", slog.String("address", m.ListenAddress))

		return
	}

	prometheusServer := metrics.NewPrometheusServer(m.ListenAddress, nil)

	g.Go(func() error {
		if err := prometheusServer.Run(ctx); err != nil {
			return fmt.Errorf("prometheusServer.Run: %w", err)
		}

		return nil
	})
}
