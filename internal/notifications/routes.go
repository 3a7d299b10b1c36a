package notifications

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Post("/register", RegisterTokenHandler)
	r.Post("/test", TestPushHandler)

	return r
}
