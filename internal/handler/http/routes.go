package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/guides/{slug}", h.resolveGuide)
		r.Get("/g/{slug}", h.guestGuide)
		r.Get("/g/{slug}/print", h.printGuide)
		r.Get("/g/{slug}/qr.png", h.guideQRCode)
	})

	// owner routes behind JWT auth
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/properties", h.createProperty)
		r.Get("/api/properties", h.listProperties)
		r.Get("/api/properties/{propertyID}", h.getProperty)
		r.Patch("/api/properties/{propertyID}", h.updateProperty)
		r.Delete("/api/properties/{propertyID}", h.deleteProperty)

		r.Post("/api/properties/{propertyID}/sections", h.createSection)
		r.Get("/api/properties/{propertyID}/sections", h.listSections)
		r.Put("/api/sections/{sectionID}", h.updateSection)
		r.Delete("/api/sections/{sectionID}", h.deleteSection)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
