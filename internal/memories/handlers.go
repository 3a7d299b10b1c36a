package memories

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/wellnest-app/wellnest-backend/internal/auth"
	"github.com/wellnest-app/wellnest-backend/internal/db"
	"github.com/wellnest-app/wellnest-backend/internal/httpx"
	"github.com/wellnest-app/wellnest-backend/internal/ownership"
	"gorm.io/gorm"
)

func ListHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var list []Memory
	if err := db.DB.Where("user_id = ?", user.UserID).Order("last_used_at DESC").Find(&list).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to load memories")
		return
	}

	httpx.JSON(w, http.StatusOK, list)
}

// UpsertHandler writes a memory idempotently: the same {user, key} twice
// leaves exactly one row holding the latest value, with last_used_at
// advanced.
func UpsertHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if input.Key == "" {
		httpx.Error(w, http.StatusBadRequest, "Key is required")
		return
	}

	var existing Memory
	err = db.DB.Where("user_id = ? AND key = ?", user.UserID, input.Key).First(&existing).Error

	if err == nil {
		err = db.DB.Model(&existing).Updates(map[string]interface{}{
			"value":        input.Value,
			"last_used_at": time.Now(),
		}).Error
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, "Failed to update memory")
			return
		}
		httpx.JSON(w, http.StatusOK, existing)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		memory := Memory{
			ID:         uuid.NewString(),
			UserID:     user.UserID,
			Key:        input.Key,
			Value:      input.Value,
			LastUsedAt: time.Now(),
		}
		if err := db.DB.Create(&memory).Error; err != nil {
			httpx.Error(w, http.StatusInternalServerError, "Failed to create memory")
			return
		}
		httpx.JSON(w, http.StatusCreated, memory)
		return
	}

	httpx.Error(w, http.StatusInternalServerError, "Failed to store memory")
}

func DeleteHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var memory Memory
	if err := db.DB.First(&memory, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "Not found")
		return
	}
	if err := ownership.Assert(memory.UserID, user.UserID); err != nil {
		httpx.Error(w, http.StatusNotFound, "Not found")
		return
	}

	if err := db.DB.Delete(&memory).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to delete memory")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
