package chat

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/wellnest-app/wellnest-backend/internal/auth"
	"github.com/wellnest-app/wellnest-backend/internal/db"
	"github.com/wellnest-app/wellnest-backend/internal/httpx"
	"github.com/wellnest-app/wellnest-backend/internal/ownership"
)

func ListSessionsHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var sessions []ChatSession
	if err := db.DB.Where("user_id = ?", user.UserID).Order("updated_at DESC").Find(&sessions).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to load sessions")
		return
	}

	httpx.JSON(w, http.StatusOK, sessions)
}

func CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := ChatSession{
		ID:     uuid.NewString(),
		UserID: user.UserID,
		Title:  input.Title,
	}
	if err := db.DB.Create(&session).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	httpx.JSON(w, http.StatusCreated, session)
}

func fetchOwned(id, userID string) (*ChatSession, error) {
	var session ChatSession
	if err := db.DB.First(&session, "id = ?", id).Error; err != nil {
		return nil, ownership.ErrNotFound
	}
	if err := ownership.Assert(session.UserID, userID); err != nil {
		return nil, err
	}
	return &session, nil
}

func GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	session, err := fetchOwned(chi.URLParam(r, "id"), user.UserID)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "Not found")
		return
	}

	if err := db.DB.Order("created_at ASC").Find(&session.Messages, "session_id = ?", session.ID).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to load messages")
		return
	}

	httpx.JSON(w, http.StatusOK, session)
}

// AppendMessageHandler appends to the session's transcript. The message
// insert and the session touch are two independent calls, not a transaction;
// messages are append-only, so a crash between the two leaves a consistent
// transcript.
func AppendMessageHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	session, err := fetchOwned(chi.URLParam(r, "id"), user.UserID)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "Not found")
		return
	}

	var input struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if input.Content == "" {
		httpx.Error(w, http.StatusBadRequest, "Content is required")
		return
	}
	if input.Role == "" {
		input.Role = "user"
	}

	message := ChatMessage{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		Role:      input.Role,
		Content:   input.Content,
	}
	if err := db.DB.Create(&message).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to append message")
		return
	}

	db.DB.Model(session).Update("updated_at", time.Now())

	httpx.JSON(w, http.StatusCreated, message)
}

func DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	session, err := fetchOwned(chi.URLParam(r, "id"), user.UserID)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "Not found")
		return
	}

	if err := db.DB.Delete(&ChatMessage{}, "session_id = ?", session.ID).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}
	if err := db.DB.Delete(session).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
