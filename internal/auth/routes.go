package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wellnest-app/wellnest-backend/internal/middleware"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	limiter := middleware.NewLoginRateLimiter()

	r.Group(func(r chi.Router) {
		r.Use(limiter.Handler)
		r.Post("/register", RegisterHandler)
		r.Post("/login", LoginHandler)
		r.Post("/mobile/login", MobileLoginHandler)
	})

	r.Post("/logout", LogoutHandler)
	r.Get("/me", MeHandler)
	r.Post("/password", UpdatePasswordHandler)
	r.Put("/profile", UpdateProfileHandler)
	r.Put("/medical", UpdateMedicalHandler)
	r.Post("/onboarding/complete", CompleteOnboardingHandler)

	return r
}
