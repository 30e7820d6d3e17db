package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
	})

	// routes that require a valid session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/notes", h.listNotes)
		r.Post("/api/notes", h.createNote)
		r.Get("/api/notes/{id}", h.getNote)
		r.Put("/api/notes/{id}", h.updateNote)
		r.Delete("/api/notes/{id}", h.deleteNote)
	})

	return router
}
