package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cyfrinair/cyfrinair-go/internal/metrics"
	"github.com/cyfrinair/cyfrinair-go/internal/middleware"
)

// NewRouter wires every route of the service. m may be nil, in which case
// no metrics are recorded and /metrics is not served.
func NewRouter(gen *GeneratorHandler, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	if m != nil {
		r.Use(middleware.Metrics(m))
		r.Handle("/metrics", m.Handler())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})

	r.Get("/health", HandleHealth)

	r.Get("/password", gen.HandlePasswords)
	r.Get("/password/{quantity}", gen.HandlePasswords)
	r.Get("/passphrase", gen.HandlePassphrases)
	r.Get("/passphrase/{quantity}", gen.HandlePassphrases)
	r.Get("/guid", HandleGUID)

	return r
}
