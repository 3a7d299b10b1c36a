package notifications

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wellnest-app/wellnest-backend/internal/auth"
	"github.com/wellnest-app/wellnest-backend/internal/db"
	"github.com/wellnest-app/wellnest-backend/internal/httpx"
	"gorm.io/gorm"
)

// RegisterTokenHandler stores a device push token for the caller. Re-posting
// the same token moves it to the current user, which is what happens when a
// device changes accounts.
func RegisterTokenHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		Token    string `json:"token"`
		Platform string `json:"platform"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if input.Token == "" {
		httpx.Error(w, http.StatusBadRequest, "Token is required")
		return
	}

	var existing DeviceToken
	err = db.DB.Where("token = ?", input.Token).First(&existing).Error

	if err == nil {
		err = db.DB.Model(&existing).Updates(map[string]interface{}{
			"user_id":  user.UserID,
			"platform": input.Platform,
		}).Error
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "Failed to register token")
			return
		}
		httpx.JSON(w, http.StatusOK, existing)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		deviceToken := DeviceToken{
			ID:        uuid.NewString(),
			UserID:    user.UserID,
			Token:     input.Token,
			Platform:  input.Platform,
			CreatedAt: time.Now(),
		}
		if err := db.DB.Create(&deviceToken).Error; err != nil {
			httpx.Error(w, http.StatusInternalServerError, "Failed to register token")
			return
		}
		httpx.JSON(w, http.StatusCreated, deviceToken)
		return
	}

	httpx.Error(w, http.StatusInternalServerError, "Failed to register token")
}

// TestPushHandler sends the caller a test notification. It resolves the
// enriched identity so the payload can mention the caller's tracked
// conditions without a second round trip.
func TestPushHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.ResolveEnrichedIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	body := "You're all set up for check-in reminders."
	if n := len(user.Conditions); n > 0 {
		body = fmt.Sprintf("Tracking %d active condition(s). We'll keep you posted.", n)
	}

	delivered := Send(user.UserID, "Wellnest test", body, map[string]string{
		"conditions": fmt.Sprintf("%d", len(user.Conditions)),
	}, "test")

	httpx.JSON(w, http.StatusOK, map[string]bool{"delivered": delivered})
}
