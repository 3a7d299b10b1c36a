package memories

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", ListHandler)
	r.Put("/", UpsertHandler)
	r.Delete("/{id}", DeleteHandler)

	return r
}
