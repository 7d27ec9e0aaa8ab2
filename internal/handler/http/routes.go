package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Three route groups with increasingly strict
// authentication: public (signup, login), administrative basic auth
// (bootstrap, admin token), and bearer token (everything else).
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/shorturl/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
		})

		// The expiry-simulation toggle authenticates with admin basic
		// credentials, not a bearer token: while the simulation is on every
		// bearer token reports expired, so a bearer-authed toggle could
		// never be switched off again.
		r.Group(func(r chi.Router) {
			r.Use(h.adminBasicAuth)
			r.Post("/dbinit", h.initializeRepository)
			r.Get("/admin-jwt", h.adminToken)
			r.Patch("/simulate-expired-jwt/{enabled}", h.simulateExpiredToken)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/all", h.getAllUsers)
			r.Get("/specific/{username}", h.getSpecificUser)
			r.Patch("/change-password", h.changePassword)
			r.Delete("/specific/{username}", h.deleteSpecificUser)
			r.Delete("/all", h.deleteAllUsers)
		})
	})

	return router
}
