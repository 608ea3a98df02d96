package middlewarex

import (
	"cmp"
	"net/http"
	"strconv"
	"time"

	"github.com/zenazn/goji/web/mutil"

	"squad_finder/pkg/metrics"
)

// Metrics records request count and latency per chi route pattern, so
// /games/{id}/ads is one series regardless of the id.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := mutil.WrapWriter(w)

		next.ServeHTTP(lw, r)

		route := routePattern(r)
		status := strconv.Itoa(cmp.Or(lw.Status(), http.StatusOK))

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
