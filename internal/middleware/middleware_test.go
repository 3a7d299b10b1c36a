package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wellnest-app/wellnest-backend/internal/config"
	"github.com/wellnest-app/wellnest-backend/internal/middleware"
	"github.com/wellnest-app/wellnest-backend/internal/utils"
)

// mockFetcher implements middleware.SessionFetcher without any database dependency.
type mockFetcher struct {
	session utils.SessionData
	err     error
}

func (m mockFetcher) FindSessionByID(id string) (utils.SessionData, error) {
	return m.session, m.err
}

// callWithCookie wraps a simple 200-OK inner handler in the provided middleware,
// optionally setting one cookie on the request, and returns the recorded response.
func callWithCookie(t *testing.T, mw func(http.Handler) http.Handler, cookieName, cookieValue string) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := mw(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if cookieName != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestAdminSessionMiddleware_MissingCookie verifies that a request with no
// admin_session cookie receives a 401 response.
func TestAdminSessionMiddleware_MissingCookie(t *testing.T) {
	fetcher := mockFetcher{}
	mw := middleware.AdminSessionMiddleware(fetcher)

	rec := callWithCookie(t, mw, "", "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestAdminSessionMiddleware_ExpiredSession verifies that a valid cookie with
// an expired session receives a 401 response containing "Session expired".
func TestAdminSessionMiddleware_ExpiredSession(t *testing.T) {
	fetcher := mockFetcher{
		session: utils.SessionData{
			AdminID:   "some-admin",
			ExpiresAt: time.Now().Add(-1 * time.Hour), // 1 hour in the past
		},
		err: nil,
	}
	mw := middleware.AdminSessionMiddleware(fetcher)

	rec := callWithCookie(t, mw, config.AdminCookieName, "expired-session-id")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Session expired") {
		t.Errorf("expected body to contain %q, got: %q", "Session expired", body)
	}
}

// TestAdminSessionMiddleware_FetcherError verifies that a fetcher error
// (e.g. session not found) results in a 401 response.
func TestAdminSessionMiddleware_FetcherError(t *testing.T) {
	fetcher := mockFetcher{
		session: utils.SessionData{},
		err:     errors.New("session not found"),
	}
	mw := middleware.AdminSessionMiddleware(fetcher)

	rec := callWithCookie(t, mw, config.AdminCookieName, "nonexistent-session-id")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestAdminSessionMiddleware_UserCookieRejected verifies the isolation of the
// two identity spaces: an end-user session cookie never passes the admin gate.
func TestAdminSessionMiddleware_UserCookieRejected(t *testing.T) {
	fetcher := mockFetcher{
		session: utils.SessionData{
			AdminID:   "some-admin",
			ExpiresAt: time.Now().Add(1 * time.Hour),
		},
	}
	mw := middleware.AdminSessionMiddleware(fetcher)

	// The middleware only reads admin_session; the user cookie is ignored.
	rec := callWithCookie(t, mw, config.SessionCookieName, "valid-user-session")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestAdminSessionMiddleware_ValidSession verifies that a valid, non-expired
// session receives a 200 response and that the adminID is injected into the context.
func TestAdminSessionMiddleware_ValidSession(t *testing.T) {
	const wantAdminID = "test-admin-123"

	fetcher := mockFetcher{
		session: utils.SessionData{
			AdminID:   wantAdminID,
			ExpiresAt: time.Now().Add(1 * time.Hour), // 1 hour in the future
		},
		err: nil,
	}

	// inner handler reads and checks the adminID from context
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAdminID, ok := utils.GetAdminIDFromContext(r.Context())
		if !ok {
			http.Error(w, "adminID not in context", http.StatusInternalServerError)
			return
		}
		if gotAdminID != wantAdminID {
			http.Error(w, "wrong adminID in context: "+gotAdminID, http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mw := middleware.AdminSessionMiddleware(fetcher)
	handler := mw(inner)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: config.AdminCookieName, Value: "valid-session-id"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
}

// TestLoginRateLimiter_BurstThenThrottle verifies requests beyond the burst
// from one IP get 429 while a different IP is unaffected.
func TestLoginRateLimiter_BurstThenThrottle(t *testing.T) {
	limiter := middleware.NewLoginRateLimiter()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := limiter.Handler(inner)

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	throttled := false
	for i := 0; i < 20; i++ {
		if send("10.0.0.1:1234") == http.StatusTooManyRequests {
			throttled = true
			break
		}
	}
	if !throttled {
		t.Error("expected 429 after exhausting the burst")
	}

	if code := send("10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("different IP should not be throttled, got %d", code)
	}
}
