package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"squad_finder/pkg/contextx"
	"squad_finder/pkg/errcodes"
	"squad_finder/pkg/httpx/reply"
	"squad_finder/pkg/logx"
	"squad_finder/pkg/middlewarex"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type RouterOptions struct {
	CORSAllowedOrigins []string
	LogFieldMaxLen     int
	// LogRawBodies disables masking of discord handles and credentials in
	// request and response dumps.
	LogRawBodies bool
}

// NewRouter builds the API handler with the full middleware stack.
func NewRouter(s Server, opts RouterOptions) http.Handler {
	var masker logx.SensitiveDataMaskerInterface = logx.NewSensitiveDataMasker()
	if opts.LogRawBodies {
		masker = logx.NewNopSensitiveDataMasker()
	}

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Metrics,
		middlewarex.Recovery,
		middlewarex.CORS(opts.CORSAllowedOrigins),
		middlewarex.RequestLogging(masker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, opts.LogFieldMaxLen),
	)

	// Set before the routes so that sub-routers inherit them.
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/games", func(r chi.Router) {
		r.Get("/", handler(s.getGames))
		r.Route("/{id}/ads", func(r chi.Router) {
			r.Post("/", handler(s.postGameAds))
			r.Get("/", handler(s.getGameAds))
		})
	})

	r.Get("/ads/{id}/discord", handler(s.getAdDiscord))
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	reply.ErrorStatus(r.Context(), w, http.StatusNotFound, errcodes.NotFound, "route not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	reply.ErrorStatus(
		r.Context(), w, http.StatusMethodNotAllowed, errcodes.ValidationError,
		r.Method+" is not allowed on "+r.URL.Path,
	)
}
