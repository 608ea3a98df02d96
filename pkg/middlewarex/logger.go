package middlewarex

import (
	"cmp"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/zenazn/goji/web/mutil"

	"squad_finder/pkg/contextx"
	"squad_finder/pkg/logx"
)

// Logger puts a request-scoped logger into the context and, once the
// request is handled, logs its outcome against the matched chi route.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		start := time.Now()

		traceID, err := contextx.TraceIDFromContext(ctx)
		if err != nil {
			logger(ctx).Error("contextx.TraceIDFromContext", logx.Error(err))
		}

		log := logger(ctx).With(
			logx.Stringer(logx.FieldTraceID, traceID),
			logx.Stringer(logx.FieldURL, r.URL),
			slog.String(logx.FieldHTTPMethod, r.Method),
			slog.String(logx.FieldIP, r.RemoteAddr),
		)

		lw := mutil.WrapWriter(w)

		next.ServeHTTP(lw, r.WithContext(contextx.WithLogger(ctx, log)))

		log.Info(
			"request handled",
			slog.String(logx.FieldRoute, routePattern(r)),
			slog.Int(logx.FieldResponseStatus, cmp.Or(lw.Status(), http.StatusOK)),
			slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
		)
	})
}

// routePattern is only known after routing; requests that matched nothing
// are reported as "unmatched".
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		return rctx.RoutePattern()
	}

	return "unmatched"
}
