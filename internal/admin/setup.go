package admin

import (
	"log"

	"github.com/wellnest-app/wellnest-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "app_admin"); err != nil {
		log.Fatal("Failed to ensure schema app_admin: ", err)
	}

	if err := db.DB.AutoMigrate(&AdminUser{}, &AdminSession{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
