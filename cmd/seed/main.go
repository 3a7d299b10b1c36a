package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/wellnest-app/wellnest-backend/internal/admin"
	"github.com/wellnest-app/wellnest-backend/internal/cms"
	"github.com/wellnest-app/wellnest-backend/internal/db"
	"github.com/wellnest-app/wellnest-backend/internal/seeds"
)

func main() {
	_ = godotenv.Load(".env.local")

	path := flag.String("file", "internal/seeds/data/seed.yaml", "seed data file")
	flag.Parse()

	db.Connect()
	admin.Init()
	cms.Init()

	if err := seeds.SeedAll(*path); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
