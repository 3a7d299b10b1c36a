package cms

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wellnest-app/wellnest-backend/internal/admin"
	"github.com/wellnest-app/wellnest-backend/internal/middleware"
)

// SetupRoutes serves the public blog surface; SetupAdminRoutes is mounted
// under the admin session gate.
func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/posts", ListPublishedHandler)
	r.Get("/posts/{slug}", GetBySlugHandler)

	return r
}

func SetupAdminRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := admin.SessionInfo{}

	r.Use(middleware.AdminSessionMiddleware(sessionFetcher))
	r.Get("/posts", ListAllHandler)
	r.Post("/posts", CreateHandler)
	r.Patch("/posts/{id}", UpdateHandler)
	r.Post("/posts/{id}/publish", PublishHandler)
	r.Post("/posts/{id}/unpublish", UnpublishHandler)
	r.Delete("/posts/{id}", DeleteHandler)

	return r
}
