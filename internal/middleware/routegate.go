package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/wellnest-app/wellnest-backend/internal/config"
	"github.com/wellnest-app/wellnest-backend/internal/tokens"
)

// LandingPath is where authenticated traffic lands.
const LandingPath = "/personal/overview"

// LoginPath receives unauthenticated redirects with a callbackUrl parameter.
const LoginPath = "/auth/login"

// OnboardingPath is the one-time setup flow every new account must finish.
const OnboardingPath = "/onboarding"

// publicRoutes are prefix-matched, so every nested path under an entry is
// public too. "/" alone is matched exactly, not as a prefix.
var publicRoutes = []string{
	"/",
	"/auth",
	"/api/auth",
	"/blog",
	"/about",
	"/contact",
	"/admin",
}

// onboardingExempt are the prefixes a not-yet-onboarded account may still
// reach.
var onboardingExempt = []string{
	OnboardingPath,
	"/auth",
	"/api/auth",
}

func isPublicRoute(path string) bool {
	for _, route := range publicRoutes {
		if route == "/" {
			if path == "/" {
				return true
			}
			continue
		}
		if strings.HasPrefix(path, route) {
			return true
		}
	}
	return false
}

func isOnboardingExempt(path string) bool {
	for _, route := range onboardingExempt {
		if strings.HasPrefix(path, route) {
			return true
		}
	}
	return false
}

func isAuthPage(path string) bool {
	return strings.HasPrefix(path, "/auth/login") || strings.HasPrefix(path, "/auth/register")
}

// RouteGate is the process-wide redirect policy evaluated before any route
// handler. It reads only the request path and the session cookie's claims —
// no identity fetch. Requests carrying a bearer header belong to the mobile
// app, which never follows redirects; those pass straight through to the
// per-route resolvers.
func RouteGate(codec tokens.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			path := r.URL.Path
			claims, hasToken := gateClaims(codec, r)

			if !hasToken {
				if isPublicRoute(path) {
					next.ServeHTTP(w, r)
					return
				}
				http.Redirect(w, r, LoginPath+"?callbackUrl="+url.QueryEscape(path), http.StatusFound)
				return
			}

			// Already signed in; no re-auth allowed.
			if isAuthPage(path) {
				http.Redirect(w, r, LandingPath, http.StatusFound)
				return
			}

			if !claims.OnboardingCompleted && !isOnboardingExempt(path) && !isPublicRoute(path) {
				http.Redirect(w, r, OnboardingPath, http.StatusFound)
				return
			}

			if claims.OnboardingCompleted && strings.HasPrefix(path, OnboardingPath) {
				http.Redirect(w, r, LandingPath, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func gateClaims(codec tokens.Codec, r *http.Request) (tokens.Claims, bool) {
	cookie, err := r.Cookie(config.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return tokens.Claims{}, false
	}

	claims, err := codec.VerifySession(cookie.Value)
	if err != nil {
		return tokens.Claims{}, false
	}
	return claims, true
}
