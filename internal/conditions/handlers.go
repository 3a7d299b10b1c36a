package conditions

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wellnest-app/wellnest-backend/internal/auth"
	"github.com/wellnest-app/wellnest-backend/internal/db"
	"github.com/wellnest-app/wellnest-backend/internal/httpx"
	"github.com/wellnest-app/wellnest-backend/internal/ownership"
)

func ListHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query := db.DB.Where("user_id = ?", user.UserID)
	if r.URL.Query().Get("all") != "true" {
		query = query.Where("active = ?", true)
	}

	var list []Condition
	if err := query.Order("created_at DESC").Find(&list).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to load conditions")
		return
	}

	httpx.JSON(w, http.StatusOK, list)
}

func CreateHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		Name     string   `json:"name"`
		Severity string   `json:"severity"`
		Symptoms []string `json:"symptoms"`
		Notes    string   `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if input.Name == "" {
		httpx.Error(w, http.StatusBadRequest, "Name is required")
		return
	}

	condition := Condition{
		ID:       uuid.NewString(),
		UserID:   user.UserID,
		Name:     input.Name,
		Severity: input.Severity,
		Symptoms: input.Symptoms,
		Notes:    input.Notes,
		Active:   true,
	}
	if err := db.DB.Create(&condition).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to create condition")
		return
	}

	httpx.JSON(w, http.StatusCreated, condition)
}

// fetchOwned loads a condition by id alone, then applies the ownership gate.
// Absence and a mismatched owner come back as the same error.
func fetchOwned(id, userID string) (*Condition, error) {
	var condition Condition
	if err := db.DB.First(&condition, "id = ?", id).Error; err != nil {
		return nil, ownership.ErrNotFound
	}
	if err := ownership.Assert(condition.UserID, userID); err != nil {
		return nil, err
	}
	return &condition, nil
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	condition, err := fetchOwned(chi.URLParam(r, "id"), user.UserID)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "Not found")
		return
	}

	httpx.JSON(w, http.StatusOK, condition)
}

func UpdateHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	condition, err := fetchOwned(chi.URLParam(r, "id"), user.UserID)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "Not found")
		return
	}

	// Pointer fields so an omitted key never clears a stored value.
	var input struct {
		Name     *string  `json:"name"`
		Severity *string  `json:"severity"`
		Symptoms []string `json:"symptoms"`
		Notes    *string  `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Severity != nil {
		updates["severity"] = *input.Severity
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if input.Symptoms != nil {
		updates["symptoms"] = pq.StringArray(input.Symptoms)
	}

	if len(updates) > 0 {
		if err := db.DB.Model(condition).Updates(updates).Error; err != nil {
			httpx.Error(w, http.StatusInternalServerError, "Failed to update condition")
			return
		}
	}

	httpx.JSON(w, http.StatusOK, condition)
}

// DeactivateHandler is the soft delete: same gate as every other mutation,
// then flip the active flag.
func DeactivateHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	condition, err := fetchOwned(chi.URLParam(r, "id"), user.UserID)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "Not found")
		return
	}

	if err := db.DB.Model(condition).Update("active", false).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to deactivate condition")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}
