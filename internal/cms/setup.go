package cms

import (
	"log"

	"github.com/wellnest-app/wellnest-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "cms"); err != nil {
		log.Fatal("Failed to ensure schema cms: ", err)
	}

	if err := db.DB.AutoMigrate(&Post{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
