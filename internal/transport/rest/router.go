package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes bundles the handlers mounted by NewRouter. Metrics is optional.
type Routes struct {
	Health   *HealthHandler
	Activity *ActivityHandler
	Search   *SearchHandler

	Metrics     http.Handler
	MetricsPath string

	// Middleware wraps every route, outermost first.
	Middleware []func(http.Handler) http.Handler
}

// NewRouter mounts the probes at the root and the API under /api/v1.
func NewRouter(routes Routes) http.Handler {
	r := chi.NewRouter()
	r.Use(routes.Middleware...)

	r.Get("/live", routes.Health.Live)
	r.Get("/ready", routes.Health.Ready)
	r.Get("/health", routes.Health.Health)
	if routes.Metrics != nil && routes.MetricsPath != "" {
		r.Method(http.MethodGet, routes.MetricsPath, routes.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/assets", func(r chi.Router) {
			r.Get("/last-edited", routes.Activity.LastEdited)
			r.Get("/last-commented", routes.Activity.LastCommented)
			r.Get("/last-commented-by-me", routes.Activity.MyLastCommented)
			r.Get("/last-commented-in-reaction", routes.Activity.LastCommentedInReaction)
		})
		r.Get("/{assets}/last-modified", routes.Activity.LastModified)
		r.Post("/changes", routes.Activity.RecordChange)

		r.Route("/search", func(r chi.Router) {
			r.Get("/fts", routes.Search.FullText)
			r.Post("/faceted", routes.Search.Faceted)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
