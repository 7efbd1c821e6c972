package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxRequestBodySize caps incoming request bodies at 10 MiB.
const maxRequestBodySize = 10 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestSize(maxRequestBodySize))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/health", h.health)
	})

	// routes behind the JWT middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Route("/api/ideas", func(r chi.Router) {
			r.Get("/", h.listIdeas)
			r.Post("/", h.createIdea)
			r.Get("/{id}", h.getIdea)
			r.Put("/{id}", h.updateIdea)
			r.Delete("/{id}", h.deleteIdea)
		})
	})

	return router
}
