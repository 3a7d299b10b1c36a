package conditions_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/wellnest-app/wellnest-backend/internal/auth"
	"github.com/wellnest-app/wellnest-backend/internal/conditions"
	"github.com/wellnest-app/wellnest-backend/internal/config"
	"github.com/wellnest-app/wellnest-backend/internal/db"
	"golang.org/x/crypto/bcrypt"
)

var dbAvailable bool
var testServer *httptest.Server

func TestMain(m *testing.M) {
	_ = godotenv.Load("../../.env.local")

	if os.Getenv("DATABASE_URL") == "" {
		os.Exit(m.Run())
	}

	os.Setenv("PORT", "")
	os.Setenv("AUTH_SECRET", "integration-test-secret")

	db.Connect()
	dbAvailable = true

	auth.Init(config.LoadFromEnv())
	conditions.Init()

	r := chi.NewRouter()
	r.Mount("/conditions", conditions.SetupRoutes())

	testServer = httptest.NewServer(r)
	defer testServer.Close()

	os.Exit(m.Run())
}

// createUserWithToken inserts a user and returns its id plus a bearer token.
func createUserWithToken(t *testing.T) (userID, bearer string) {
	t.Helper()
	if !dbAvailable {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}

	email := fmt.Sprintf("cond_%s@ex.com", uuid.New().String()[:8])
	hashed, _ := bcrypt.GenerateFromPassword([]byte("TestPass123!"), bcrypt.DefaultCost)

	user := auth.User{
		UserID:         uuid.New().String(),
		Email:          email,
		HashedPassword: string(hashed),
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	t.Cleanup(func() {
		db.DB.Delete(&conditions.Condition{}, "user_id = ?", user.UserID)
		db.DB.Delete(&auth.User{}, "user_id = ?", user.UserID)
	})

	token, err := auth.Codec().SignMobile(user.UserID, user.Email)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return user.UserID, token
}

func doJSON(t *testing.T, method, path, bearer string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal error: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, testServer.URL+path, body)
	if err != nil {
		t.Fatalf("request build error: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return resp
}

func createCondition(t *testing.T, bearer, name string) string {
	t.Helper()

	resp := doJSON(t, http.MethodPost, "/conditions/", bearer, map[string]interface{}{
		"name":     name,
		"severity": "moderate",
		"symptoms": []string{"fatigue"},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create condition: expected 201, got %d", resp.StatusCode)
	}

	var created conditions.Condition
	json.NewDecoder(resp.Body).Decode(&created)
	return created.ID
}

// TestCrossUserFetchIsNotFound verifies another user's condition and a
// nonexistent id produce byte-identical 404 responses.
func TestCrossUserFetchIsNotFound(t *testing.T) {
	_, tokenA := createUserWithToken(t)
	_, tokenB := createUserWithToken(t)

	conditionID := createCondition(t, tokenA, "migraine")

	respOwned := doJSON(t, http.MethodGet, "/conditions/"+conditionID, tokenB, nil)
	ownedBody, _ := io.ReadAll(respOwned.Body)
	respOwned.Body.Close()

	respMissing := doJSON(t, http.MethodGet, "/conditions/"+uuid.NewString(), tokenB, nil)
	missingBody, _ := io.ReadAll(respMissing.Body)
	respMissing.Body.Close()

	if respOwned.StatusCode != http.StatusNotFound {
		t.Errorf("other user's condition: expected 404, got %d", respOwned.StatusCode)
	}
	if respMissing.StatusCode != http.StatusNotFound {
		t.Errorf("missing condition: expected 404, got %d", respMissing.StatusCode)
	}
	if !bytes.Equal(ownedBody, missingBody) {
		t.Errorf("404 bodies differ: %q vs %q", ownedBody, missingBody)
	}

	// The owner still sees it.
	respOwner := doJSON(t, http.MethodGet, "/conditions/"+conditionID, tokenA, nil)
	respOwner.Body.Close()
	if respOwner.StatusCode != http.StatusOK {
		t.Errorf("owner fetch: expected 200, got %d", respOwner.StatusCode)
	}
}

// TestCrossUserDeactivateIsNotFound verifies the soft delete runs behind the
// same gate as reads.
func TestCrossUserDeactivateIsNotFound(t *testing.T) {
	_, tokenA := createUserWithToken(t)
	_, tokenB := createUserWithToken(t)

	conditionID := createCondition(t, tokenA, "asthma")

	resp := doJSON(t, http.MethodDelete, "/conditions/"+conditionID, tokenB, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("cross-user deactivate: expected 404, got %d", resp.StatusCode)
	}
}

// TestDeactivateHidesFromDefaultList verifies deactivated conditions drop out
// of the default listing but stay visible with ?all=true.
func TestDeactivateHidesFromDefaultList(t *testing.T) {
	_, token := createUserWithToken(t)

	conditionID := createCondition(t, token, "eczema")

	resp := doJSON(t, http.MethodDelete, "/conditions/"+conditionID, token, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("deactivate: expected 200, got %d", resp.StatusCode)
	}

	listResp := doJSON(t, http.MethodGet, "/conditions/", token, nil)
	var active []conditions.Condition
	json.NewDecoder(listResp.Body).Decode(&active)
	listResp.Body.Close()
	if len(active) != 0 {
		t.Errorf("default list: expected 0 active conditions, got %d", len(active))
	}

	allResp := doJSON(t, http.MethodGet, "/conditions/?all=true", token, nil)
	var all []conditions.Condition
	json.NewDecoder(allResp.Body).Decode(&all)
	allResp.Body.Close()
	if len(all) != 1 {
		t.Errorf("all=true list: expected 1 condition, got %d", len(all))
	}
}

// TestPartialUpdateLeavesOmittedFields verifies a PATCH only touches the
// keys present in the payload.
func TestPartialUpdateLeavesOmittedFields(t *testing.T) {
	_, token := createUserWithToken(t)

	conditionID := createCondition(t, token, "insomnia")

	resp := doJSON(t, http.MethodPatch, "/conditions/"+conditionID, token, map[string]string{
		"notes": "worse on weekdays",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("patch notes: expected 200, got %d", resp.StatusCode)
	}

	getResp := doJSON(t, http.MethodGet, "/conditions/"+conditionID, token, nil)
	var updated conditions.Condition
	json.NewDecoder(getResp.Body).Decode(&updated)
	getResp.Body.Close()

	if updated.Name != "insomnia" {
		t.Errorf("name: expected %q untouched, got %q", "insomnia", updated.Name)
	}
	if updated.Severity != "moderate" {
		t.Errorf("severity: expected %q untouched, got %q", "moderate", updated.Severity)
	}
	if len(updated.Symptoms) != 1 || updated.Symptoms[0] != "fatigue" {
		t.Errorf("symptoms: expected [fatigue] untouched, got %v", updated.Symptoms)
	}
	if updated.Notes != "worse on weekdays" {
		t.Errorf("notes: expected update applied, got %q", updated.Notes)
	}

	// A later PATCH without notes must not clear them.
	resp = doJSON(t, http.MethodPatch, "/conditions/"+conditionID, token, map[string]string{
		"severity": "severe",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("patch severity: expected 200, got %d", resp.StatusCode)
	}

	getResp = doJSON(t, http.MethodGet, "/conditions/"+conditionID, token, nil)
	json.NewDecoder(getResp.Body).Decode(&updated)
	getResp.Body.Close()

	if updated.Severity != "severe" {
		t.Errorf("severity: expected update applied, got %q", updated.Severity)
	}
	if updated.Notes != "worse on weekdays" {
		t.Errorf("notes: expected %q untouched, got %q", "worse on weekdays", updated.Notes)
	}
}
