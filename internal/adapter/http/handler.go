package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"streetcast/internal/core/port"
)

// Options tunes the cross-cutting middleware of the router.
type Options struct {
	// CORSOrigins lists origins allowed to call the API from a browser.
	CORSOrigins []string
	// RateLimit is the per-IP request budget per minute on device endpoints.
	// Zero disables limiting.
	RateLimit int
	// TrustProxy makes X-Forwarded-For, X-Real-IP and True-Client-IP set the
	// client address used for logging and rate limiting. Enable it only
	// behind a proxy that overwrites those headers; otherwise clients can
	// pick their own rate-limit key.
	TrustProxy bool
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Device endpoints (manifest polling and impression reporting) and the admin
// endpoints share one chi.Router mounted under /api.
type Handler struct {
	svc    port.SignageUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.SignageUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Use(requestID)
	if opts.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if opts.RateLimit > 0 {
				// keyed on RemoteAddr, which RealIP rewrites only for a trusted proxy
				r.Use(httprate.LimitByIP(opts.RateLimit, time.Minute))
			}
			r.Get("/manifest/{deviceId}", h.handleManifest)
			r.Post("/impression", h.handleImpression)
		})

		r.Get("/analytics", h.handleAnalytics)

		r.Get("/advertisers", h.handleListAdvertisers)
		r.Post("/advertisers", h.handleCreateAdvertiser)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/creatives", h.handleListCreatives)
		r.Post("/creatives", h.handleCreateCreative)
		r.Delete("/creatives/{id}", h.handleDeleteCreative)
		r.Get("/devices", h.handleListDevices)
		r.Post("/devices", h.handleCreateDevice)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}
