package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users/register", h.register)
		r.Post("/users/login", h.login)
		r.Get("/version", h.getServerVersion)
	})

	// any authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/report-entities", h.createReportEntity)
		r.Get("/classes", h.listClasses)
		r.Get("/classes/{id}", h.getClass)
	})

	// employees only
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.requireEmployee)
		r.Post("/class-roles", h.createClassRole)
		r.Post("/classes", h.createClass)
		r.Put("/classes/{id}", h.updateClass)
		r.Delete("/classes/{id}", h.archiveClass)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
