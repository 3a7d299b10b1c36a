package chat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/sessions", ListSessionsHandler)
	r.Post("/sessions", CreateSessionHandler)
	r.Get("/sessions/{id}", GetSessionHandler)
	r.Post("/sessions/{id}/messages", AppendMessageHandler)
	r.Delete("/sessions/{id}", DeleteSessionHandler)

	return r
}
