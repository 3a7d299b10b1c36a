package cms

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/wellnest-app/wellnest-backend/internal/db"
	"github.com/wellnest-app/wellnest-backend/internal/httpx"
)

func ListPublishedHandler(w http.ResponseWriter, r *http.Request) {
	var posts []Post
	if err := db.DB.Where("published = ?", true).Order("created_at DESC").Find(&posts).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to load posts")
		return
	}

	httpx.JSON(w, http.StatusOK, posts)
}

func GetBySlugHandler(w http.ResponseWriter, r *http.Request) {
	var post Post
	err := db.DB.First(&post, "slug = ? AND published = ?", chi.URLParam(r, "slug"), true).Error
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "Not found")
		return
	}

	httpx.JSON(w, http.StatusOK, post)
}

func ListAllHandler(w http.ResponseWriter, r *http.Request) {
	var posts []Post
	if err := db.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to load posts")
		return
	}

	httpx.JSON(w, http.StatusOK, posts)
}

func CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Slug      string `json:"slug"`
		Title     string `json:"title"`
		Body      string `json:"body"`
		Published bool   `json:"published"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if input.Slug == "" || input.Title == "" {
		httpx.Error(w, http.StatusBadRequest, "Slug and title are required")
		return
	}

	// Check if slug is taken
	var existing Post
	if err := db.DB.First(&existing, "slug = ?", input.Slug).Error; err == nil {
		httpx.Error(w, http.StatusConflict, "Slug already in use")
		return
	}

	post := Post{
		ID:        uuid.NewString(),
		Slug:      input.Slug,
		Title:     input.Title,
		Body:      input.Body,
		Published: input.Published,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	httpx.JSON(w, http.StatusCreated, post)
}

func UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var post Post
	if err := db.DB.First(&post, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "Not found")
		return
	}

	var input struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	updates := map[string]interface{}{}
	if input.Title != "" {
		updates["title"] = input.Title
	}
	if input.Body != "" {
		updates["body"] = input.Body
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&post).Updates(updates).Error; err != nil {
			httpx.Error(w, http.StatusInternalServerError, "Failed to update post")
			return
		}
	}

	httpx.JSON(w, http.StatusOK, post)
}

func PublishHandler(w http.ResponseWriter, r *http.Request) {
	setPublished(w, r, true)
}

func UnpublishHandler(w http.ResponseWriter, r *http.Request) {
	setPublished(w, r, false)
}

func setPublished(w http.ResponseWriter, r *http.Request, published bool) {
	var post Post
	if err := db.DB.First(&post, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "Not found")
		return
	}

	if err := db.DB.Model(&post).Update("published", published).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to update post")
		return
	}

	httpx.JSON(w, http.StatusOK, post)
}

func DeleteHandler(w http.ResponseWriter, r *http.Request) {
	var post Post
	if err := db.DB.First(&post, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "Not found")
		return
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
