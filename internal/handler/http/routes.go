package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-polip/internal/adapter"
)

const (
	PathVersion = "/api/version/"
	PathMetrics = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	router.Get(adapter.PathHealthCheck, h.healthCheck)
	router.Get(PathVersion, h.getServerVersion)
	router.Method(http.MethodGet, PathMetrics, h.metrics.Handler())

	// device routes
	router.Group(func(r chi.Router) {
		r.Use(h.withDevice)

		// the counter is read here without being checked
		r.Post(adapter.PathValue, h.value)

		r.Group(func(r chi.Router) {
			r.Use(h.withTag, h.withCounter)

			r.Post(adapter.PathPoll, h.poll)
			r.Post(adapter.PathMeta, h.meta)
			r.Post(adapter.PathState, h.pushState)
			r.Post(adapter.PathSense, h.pushSense)
			r.Post(adapter.PathError, h.pushError)
			r.Post(adapter.PathRPC, h.pushRPC)
			r.Post(adapter.PathSchema, h.schema)
			r.Post(adapter.PathErrorSemantic, h.errorSemantic)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
