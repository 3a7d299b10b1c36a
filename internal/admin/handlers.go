package admin

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/wellnest-app/wellnest-backend/internal/config"
	"github.com/wellnest-app/wellnest-backend/internal/db"
	"github.com/wellnest-app/wellnest-backend/internal/httpx"
	"github.com/wellnest-app/wellnest-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// sessionLifetime bounds an admin session. Shorter than end-user sessions on
// purpose: the admin surface can publish content.
const sessionLifetime = 6 * time.Hour

func adminCookie(value string, maxAge int) *http.Cookie {
	secure := os.Getenv("PORT") != ""
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     config.AdminCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: sameSite,
		Secure:   secure,
	}
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Unknown username, wrong password and deactivated account all get the
	// same generic response.
	var admin AdminUser
	if err := db.DB.First(&admin, "username = ?", input.Username).Error; err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !admin.Active {
		httpx.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(input.Password)); err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	sessionID := uuid.NewString()
	expires := time.Now().Add(sessionLifetime)

	// One live session per admin: replace an existing row, else create.
	var existing AdminSession
	db.DB.Where("admin_id = ?", admin.AdminID).First(&existing)
	if existing.AdminID != "" {
		db.DB.Model(&existing).Updates(AdminSession{
			SessionID: sessionID,
			ExpiresAt: expires,
		})
	} else {
		db.DB.Create(&AdminSession{
			SessionID: sessionID,
			AdminID:   admin.AdminID,
			ExpiresAt: expires,
		})
	}

	http.SetCookie(w, adminCookie(sessionID, int(sessionLifetime.Seconds())))
	httpx.JSON(w, http.StatusOK, map[string]string{
		"admin_id": admin.AdminID,
		"username": admin.Username,
	})
}

func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(config.AdminCookieName)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var session AdminSession
	if err := db.DB.First(&session, "session_id = ?", cookie.Value).Error; err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	db.DB.Delete(&session)
	http.SetCookie(w, adminCookie("", -1))
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func MeHandler(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetAdminIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var admin AdminUser
	if err := db.DB.First(&admin, "admin_id = ?", adminID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "Not found")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{
		"admin_id": admin.AdminID,
		"username": admin.Username,
	})
}
