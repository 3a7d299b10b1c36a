package auth

import (
	"log"
	"net/http"

	"github.com/wellnest-app/wellnest-backend/internal/config"
	"github.com/wellnest-app/wellnest-backend/internal/db"
	"github.com/wellnest-app/wellnest-backend/internal/tokens"
)

var (
	codec    tokens.Codec
	resolver Resolver
)

func Init(cfg config.Config) {
	if err := db.EnsureSchema(db.DB, "app_auth"); err != nil {
		log.Fatal("Failed to ensure schema app_auth: ", err)
	}

	if err := db.DB.AutoMigrate(&User{}, &Profile{}, &MedicalProfile{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	codec = tokens.NewCodec(cfg.Secret)
	resolver = Resolver{Codec: codec, Users: UserInfo{}}
}

// Codec exposes the process-wide token codec, used by the route gate and by
// handlers that re-issue the session cookie.
func Codec() tokens.Codec { return codec }

// ResolveIdentity resolves the caller of r using the process-wide resolver.
func ResolveIdentity(r *http.Request) (*User, error) {
	return resolver.ResolveIdentity(r)
}

// ResolveEnrichedIdentity resolves the caller with conditions and memories
// preloaded.
func ResolveEnrichedIdentity(r *http.Request) (*EnrichedUser, error) {
	return resolver.ResolveEnrichedIdentity(r)
}
