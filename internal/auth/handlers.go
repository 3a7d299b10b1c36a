package auth

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/wellnest-app/wellnest-backend/internal/config"
	"github.com/wellnest-app/wellnest-backend/internal/db"
	"github.com/wellnest-app/wellnest-backend/internal/httpx"
	"github.com/wellnest-app/wellnest-backend/internal/tokens"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// userSummary is the caller-facing identity shape shared by login and me.
type userSummary struct {
	ID                  string `json:"id"`
	Email               string `json:"email"`
	Name                string `json:"name"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
}

func summarize(u *User) userSummary {
	return userSummary{
		ID:                  u.UserID,
		Email:               u.Email,
		Name:                u.Name,
		OnboardingCompleted: u.OnboardingCompleted,
	}
}

func titleName(name string) string {
	return cases.Title(language.English).String(name)
}

// sessionCookie builds the web session cookie. Hosted environments set PORT
// and get Secure cookies; local dev over plain HTTP does not.
func sessionCookie(value string, maxAge int) *http.Cookie {
	secure := os.Getenv("PORT") != ""
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     config.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: sameSite,
		Secure:   secure,
	}
}

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if input.Email == "" || input.Password == "" {
		httpx.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Check if email is taken
	var existing User
	if err := db.DB.First(&existing, "email = ?", input.Email).Error; err == nil {
		httpx.Error(w, http.StatusConflict, "Email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Server error hashing password")
		return
	}

	user := User{
		UserID:         uuid.NewString(),
		Email:          input.Email,
		Name:           titleName(input.Name),
		HashedPassword: string(hashed),
	}

	if err := db.DB.Create(&user).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]string{
		"user_id": user.UserID,
		"email":   user.Email,
	})
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Same generic message whether the email is unknown or the password is
	// wrong, so login can't be used to enumerate accounts.
	var user User
	if err := db.DB.First(&user, "email = ?", input.Email).Error; err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)); err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := codec.SignSession(user.UserID, user.Email, user.Name, user.OnboardingCompleted)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	http.SetCookie(w, sessionCookie(token, int(tokens.SessionLifetime.Seconds())))
	httpx.JSON(w, http.StatusOK, map[string]interface{}{"user": summarize(&user)})
}

func MobileLoginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Mobile keyboards love to capitalize emails; match case-insensitively.
	var user User
	if err := db.DB.First(&user, "LOWER(email) = LOWER(?)", input.Email).Error; err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)); err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := codec.SignMobile(user.UserID, user.Email)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  summarize(&user),
	})
}

// LogoutHandler clears the web session cookie. Mobile bearer tokens are
// stateless and stay valid until their expiry; mobile logout is the client
// discarding its token.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, sessionCookie("", -1))
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func MeHandler(w http.ResponseWriter, r *http.Request) {
	user, err := ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	httpx.JSON(w, http.StatusOK, user)
}

func UpdatePasswordHandler(w http.ResponseWriter, r *http.Request) {
	user, err := ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.CurrentPassword == "" || input.NewPassword == "" {
		httpx.Error(w, http.StatusBadRequest, "Current and new password are required")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.CurrentPassword)); err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Invalid current password")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Server error hashing password")
		return
	}

	if err := db.DB.Model(user).Update("hashed_password", string(hashed)).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to update password")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}

func UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	user, err := ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		Name        string  `json:"name"`
		DateOfBirth string  `json:"date_of_birth"`
		Sex         string  `json:"sex"`
		HeightCm    float64 `json:"height_cm"`
		WeightKg    float64 `json:"weight_kg"`
		Timezone    string  `json:"timezone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if input.Name != "" {
		if err := db.DB.Model(user).Update("name", titleName(input.Name)).Error; err != nil {
			httpx.Error(w, http.StatusInternalServerError, "Failed to update profile")
			return
		}
	}

	profile := Profile{
		UserID:      user.UserID,
		DateOfBirth: input.DateOfBirth,
		Sex:         input.Sex,
		HeightCm:    input.HeightCm,
		WeightKg:    input.WeightKg,
		Timezone:    input.Timezone,
	}
	if err := db.DB.Save(&profile).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	httpx.JSON(w, http.StatusOK, profile)
}

func UpdateMedicalHandler(w http.ResponseWriter, r *http.Request) {
	user, err := ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		Allergies   []string `json:"allergies"`
		Medications []string `json:"medications"`
		Notes       string   `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	medical := MedicalProfile{
		UserID:      user.UserID,
		Allergies:   input.Allergies,
		Medications: input.Medications,
		Notes:       input.Notes,
	}
	if err := db.DB.Save(&medical).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to update medical profile")
		return
	}

	httpx.JSON(w, http.StatusOK, medical)
}

// CompleteOnboardingHandler marks onboarding done and re-issues the session
// cookie so the route gate's embedded claim is current without a DB fetch.
func CompleteOnboardingHandler(w http.ResponseWriter, r *http.Request) {
	user, err := ResolveIdentity(r)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		DateOfBirth string   `json:"date_of_birth"`
		Sex         string   `json:"sex"`
		HeightCm    float64  `json:"height_cm"`
		WeightKg    float64  `json:"weight_kg"`
		Timezone    string   `json:"timezone"`
		Allergies   []string `json:"allergies"`
		Medications []string `json:"medications"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile := Profile{
		UserID:      user.UserID,
		DateOfBirth: input.DateOfBirth,
		Sex:         input.Sex,
		HeightCm:    input.HeightCm,
		WeightKg:    input.WeightKg,
		Timezone:    input.Timezone,
	}
	if err := db.DB.Save(&profile).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	medical := MedicalProfile{
		UserID:      user.UserID,
		Allergies:   input.Allergies,
		Medications: input.Medications,
	}
	if err := db.DB.Save(&medical).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to save medical profile")
		return
	}

	if err := db.DB.Model(user).Update("onboarding_completed", true).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to complete onboarding")
		return
	}
	user.OnboardingCompleted = true

	token, err := codec.SignSession(user.UserID, user.Email, user.Name, true)
	if err == nil {
		http.SetCookie(w, sessionCookie(token, int(tokens.SessionLifetime.Seconds())))
	}

	httpx.JSON(w, http.StatusOK, map[string]interface{}{"user": summarize(user)})
}
