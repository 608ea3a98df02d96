package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"squad_finder/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID reuses the caller's X-Trace-Id when it is well formed and
// generates a new one otherwise. The id is echoed in the response header.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, err := contextx.ParseTraceID(r.Header.Get(headerNameTraceID))
		if err != nil {
			traceID = contextx.TraceID(xid.New().String())
		}

		ctx := contextx.WithTraceID(r.Context(), traceID)

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
