package middlewarex

import (
	"net/http"

	"github.com/go-chi/cors"
)

const corsMaxAgeSeconds = 300

// CORS allows browser clients from the given origins. An empty list allows
// every origin.
func CORS(allowedOrigins []string) func(next http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		//nolint:exhaustruct
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", headerNameTraceID},
		ExposedHeaders: []string{headerNameTraceID},
		MaxAge:         corsMaxAgeSeconds,
	})
}
