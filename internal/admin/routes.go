package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wellnest-app/wellnest-backend/internal/middleware"
)

// SetupRoutes builds the admin surface. The CMS router is passed in rather
// than imported so the cms package can depend on this one for its session
// fetcher.
func SetupRoutes(cmsAdmin http.Handler) http.Handler {
	r := chi.NewRouter()
	sessionFetcher := SessionInfo{}

	r.Post("/login", LoginHandler)
	r.Post("/logout", LogoutHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminSessionMiddleware(sessionFetcher))
		r.Get("/me", MeHandler)
	})

	r.Mount("/cms", cmsAdmin)

	return r
}
