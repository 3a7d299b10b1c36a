package notifications

import (
	"log"

	"github.com/wellnest-app/wellnest-backend/internal/db"
)

var provider PushProvider

func Init() {
	if err := db.EnsureSchema(db.DB, "wellness"); err != nil {
		log.Fatal("Failed to ensure schema wellness: ", err)
	}

	if err := db.DB.AutoMigrate(&DeviceToken{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	// Push delivery is best-effort: a bad provider config disables sends but
	// never blocks startup.
	p, err := NewProvider(LoadFromEnv())
	if err != nil {
		log.Printf("[push] provider disabled: %v", err)
		return
	}
	provider = p
}
