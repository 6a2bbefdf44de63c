package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.register)
		r.Post("/api/users/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.getCurrentUser)
		r.Patch("/api/users/me", h.updateCurrentUser)
		r.Delete("/api/users/me", h.logout)

		r.Post("/api/contacts", h.createContact)
		r.Get("/api/contacts", h.searchContacts)
		r.Get("/api/contacts/{contactId}", h.getContact)
		r.Put("/api/contacts/{contactId}", h.updateContact)
		r.Delete("/api/contacts/{contactId}", h.removeContact)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
