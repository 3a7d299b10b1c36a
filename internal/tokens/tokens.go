package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types. Web tokens ride the session cookie; mobile tokens ride the
// Authorization header. The two namespaces never verify interchangeably.
const (
	TypeWeb    = "web"
	TypeMobile = "mobile"
)

// SessionLifetime is how long a web session cookie stays valid after login.
const SessionLifetime = 7 * 24 * time.Hour

// MobileLifetime is the fixed bearer-token lifetime. There is no sliding
// renewal and no revocation list: a mobile token stays valid until it
// expires, even after logout.
const MobileLifetime = 30 * 24 * time.Hour

// ErrInvalidToken covers malformed input, a bad signature, an expired token
// and a type mismatch. Callers must treat all of them identically.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the decoded payload of a verified token.
type Claims struct {
	Subject             string
	Email               string
	Name                string
	OnboardingCompleted bool
	Type                string
}

type jwtClaims struct {
	Email               string `json:"email"`
	Name                string `json:"name,omitempty"`
	OnboardingCompleted bool   `json:"onboardingCompleted,omitempty"`
	Typ                 string `json:"typ"`
	jwt.RegisteredClaims
}

// Codec signs and verifies HS256 tokens with a single shared secret.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) Codec {
	return Codec{secret: []byte(secret)}
}

// SignSession issues a web session token carrying the claims the route gate
// reads without a database fetch.
func (c Codec) SignSession(userID, email, name string, onboardingCompleted bool) (string, error) {
	return c.sign(jwtClaims{
		Email:               email,
		Name:                name,
		OnboardingCompleted: onboardingCompleted,
		Typ:                 TypeWeb,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionLifetime)),
		},
	})
}

// SignMobile issues a bearer token for the mobile app.
func (c Codec) SignMobile(userID, email string) (string, error) {
	return c.sign(jwtClaims{
		Email: email,
		Typ:   TypeMobile,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(MobileLifetime)),
		},
	})
}

func (c Codec) sign(claims jwtClaims) (string, error) {
	if len(c.secret) == 0 {
		return "", ErrInvalidToken
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", ErrInvalidToken
	}
	return signed, nil
}

// VerifySession verifies a web session token.
func (c Codec) VerifySession(raw string) (Claims, error) {
	return c.verify(raw, TypeWeb)
}

// VerifyMobile verifies a mobile bearer token.
func (c Codec) VerifyMobile(raw string) (Claims, error) {
	return c.verify(raw, TypeMobile)
}

func (c Codec) verify(raw, wantTyp string) (Claims, error) {
	if len(c.secret) == 0 {
		return Claims{}, ErrInvalidToken
	}

	var parsed jwtClaims
	token, err := jwt.ParseWithClaims(raw, &parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	if parsed.Typ != wantTyp {
		return Claims{}, ErrInvalidToken
	}

	return Claims{
		Subject:             parsed.Subject,
		Email:               parsed.Email,
		Name:                parsed.Name,
		OnboardingCompleted: parsed.OnboardingCompleted,
		Type:                parsed.Typ,
	}, nil
}
