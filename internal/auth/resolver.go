package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/wellnest-app/wellnest-backend/internal/config"
	"github.com/wellnest-app/wellnest-backend/internal/tokens"
)

// ErrUnauthorized is the single failure for every resolution miss: no
// credentials, a bad or expired token, or a user that no longer exists.
// Collapsing them keeps the response shape from leaking which one happened.
var ErrUnauthorized = errors.New("unauthorized")

// Resolver normalizes web (cookie) and mobile (bearer) auth into one
// identity shape so route handlers never branch on client type.
type Resolver struct {
	Codec tokens.Codec
	Users UserFetcher
}

// ResolveIdentity tries the session cookie first, then the Authorization
// header. The cookie path short-circuits: a valid session that maps to an
// existing user never consults the bearer path.
func (rs Resolver) ResolveIdentity(r *http.Request) (*User, error) {
	if email, ok := rs.sessionEmail(r); ok {
		if user, err := rs.Users.FindByEmail(email); err == nil {
			return user, nil
		}
	}

	if subject, ok := rs.bearerSubject(r); ok {
		if user, err := rs.Users.FindByID(subject); err == nil {
			return user, nil
		}
	}

	return nil, ErrUnauthorized
}

// ResolveEnrichedIdentity is the same auth logic with a richer return shape:
// the identity arrives with its active conditions and memories preloaded.
// Notification routes use this; everything else uses ResolveIdentity.
func (rs Resolver) ResolveEnrichedIdentity(r *http.Request) (*EnrichedUser, error) {
	if email, ok := rs.sessionEmail(r); ok {
		if user, err := rs.Users.FindEnrichedByEmail(email); err == nil {
			return user, nil
		}
	}

	if subject, ok := rs.bearerSubject(r); ok {
		if user, err := rs.Users.FindEnrichedByID(subject); err == nil {
			return user, nil
		}
	}

	return nil, ErrUnauthorized
}

func (rs Resolver) sessionEmail(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(config.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	claims, err := rs.Codec.VerifySession(cookie.Value)
	if err != nil {
		return "", false
	}
	return claims.Email, true
}

func (rs Resolver) bearerSubject(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}

	claims, err := rs.Codec.VerifyMobile(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return "", false
	}
	return claims.Subject, true
}
