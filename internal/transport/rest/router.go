package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/nazm-backend/internal/config"
	"github.com/heartmarshall/nazm-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Meaning  *MeaningHandler
	Annotate *AnnotateHandler
	Poems    *PoemsHandler
	Health   *HealthHandler
}

// RouterOptions configures the middleware around the handlers.
type RouterOptions struct {
	CORS              config.CORSConfig
	TrustForwardedFor bool
	// Limiter rate-limits meaning lookups per client when set.
	Limiter          *middleware.RateLimiter
	LookupsPerMinute int
}

// NewRouter mounts the API and probes behind the shared middleware chain:
// RequestID, ClientIP, Logger, Recovery, CORS.
func NewRouter(logger *slog.Logger, h Handlers, opts RouterOptions) http.Handler {
	var limit middleware.Middleware
	if opts.Limiter != nil && opts.LookupsPerMinute > 0 {
		limit = opts.Limiter.Limit(opts.LookupsPerMinute)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("GET /api/meaning/{word}", middleware.Chain(limit)(http.HandlerFunc(h.Meaning.Get)))
	mux.HandleFunc("GET /api/annotate", h.Annotate.Get)
	mux.HandleFunc("GET /api/poems", h.Poems.List)
	mux.HandleFunc("GET /api/poems/{id}", h.Poems.Get)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(opts.TrustForwardedFor),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(opts.CORS),
	)(mux)
}
