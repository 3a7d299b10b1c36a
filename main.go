package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/wellnest-app/wellnest-backend/internal/admin"
	"github.com/wellnest-app/wellnest-backend/internal/auth"
	"github.com/wellnest-app/wellnest-backend/internal/chat"
	"github.com/wellnest-app/wellnest-backend/internal/cms"
	"github.com/wellnest-app/wellnest-backend/internal/conditions"
	"github.com/wellnest-app/wellnest-backend/internal/config"
	"github.com/wellnest-app/wellnest-backend/internal/db"
	"github.com/wellnest-app/wellnest-backend/internal/memories"
	"github.com/wellnest-app/wellnest-backend/internal/middleware"
	"github.com/wellnest-app/wellnest-backend/internal/notifications"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Refusing to start: ", err)
	}

	db.Connect()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	auth.Init(cfg)
	admin.Init()
	conditions.Init()
	memories.Init()
	chat.Init()
	notifications.Init()
	cms.Init()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.RouteGate(auth.Codec()))
	r.Get("/", RootHandler)

	r.Mount("/auth", auth.SetupRoutes())
	r.Mount("/conditions", conditions.SetupRoutes())
	r.Mount("/memories", memories.SetupRoutes())
	r.Mount("/chat", chat.SetupRoutes())
	r.Mount("/notifications", notifications.SetupRoutes())
	r.Mount("/blog", cms.SetupRoutes())
	r.Mount("/admin", admin.SetupRoutes(cms.SetupAdminRoutes()))

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
