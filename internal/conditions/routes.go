package conditions

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", ListHandler)
	r.Post("/", CreateHandler)
	r.Get("/{id}", GetHandler)
	r.Patch("/{id}", UpdateHandler)
	r.Delete("/{id}", DeactivateHandler)

	return r
}
