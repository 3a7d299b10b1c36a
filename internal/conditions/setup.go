package conditions

import (
	"log"

	"github.com/wellnest-app/wellnest-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "wellness"); err != nil {
		log.Fatal("Failed to ensure schema wellness: ", err)
	}

	if err := db.DB.AutoMigrate(&Condition{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
