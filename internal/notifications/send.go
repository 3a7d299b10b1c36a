package notifications

import (
	"context"
	"log"
	"time"

	"github.com/wellnest-app/wellnest-backend/internal/db"
)

// Send delivers a push notification to every device the user has registered.
// It is fire-and-forget from the caller's perspective: failures are logged
// and reported as false, never propagated.
func Send(userID, title, body string, data map[string]string, notifType string) bool {
	if provider == nil {
		log.Printf("[push] send skipped for user %s: %v", userID, ErrProviderDisabled)
		return false
	}

	var deviceTokens []string
	err := db.DB.Model(&DeviceToken{}).Where("user_id = ?", userID).
		Pluck("token", &deviceTokens).Error
	if err != nil {
		log.Printf("[push] token lookup failed for user %s: %v", userID, err)
		return false
	}
	if len(deviceTokens) == 0 {
		log.Printf("[push] send skipped for user %s: %v", userID, ErrNoDeviceTokens)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err = provider.Push(ctx, deviceTokens, Notification{
		Title: title,
		Body:  body,
		Data:  data,
		Type:  notifType,
	})
	if err != nil {
		log.Printf("[%s] push failed for user %s: %v", provider.Name(), userID, err)
		return false
	}

	log.Printf("[%s] pushed %q to %d device(s) for user %s", provider.Name(), title, len(deviceTokens), userID)
	return true
}
