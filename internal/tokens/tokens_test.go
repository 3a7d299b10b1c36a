package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestSessionRoundTrip(t *testing.T) {
	codec := NewCodec(testSecret)

	raw, err := codec.SignSession("user-1", "user@ex.com", "Ada", true)
	require.NoError(t, err)

	claims, err := codec.VerifySession(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "user@ex.com", claims.Email)
	assert.Equal(t, "Ada", claims.Name)
	assert.True(t, claims.OnboardingCompleted)
	assert.Equal(t, TypeWeb, claims.Type)
}

func TestMobileRoundTrip(t *testing.T) {
	codec := NewCodec(testSecret)

	raw, err := codec.SignMobile("user-2", "mobile@ex.com")
	require.NoError(t, err)

	claims, err := codec.VerifyMobile(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-2", claims.Subject)
	assert.Equal(t, "mobile@ex.com", claims.Email)
	assert.Equal(t, TypeMobile, claims.Type)
}

// A web token must not verify as a mobile token and vice versa; the two
// namespaces fail with the same generic error as any other bad token.
func TestTypeMismatch(t *testing.T) {
	codec := NewCodec(testSecret)

	session, err := codec.SignSession("user-1", "user@ex.com", "", false)
	require.NoError(t, err)
	mobile, err := codec.SignMobile("user-1", "user@ex.com")
	require.NoError(t, err)

	_, err = codec.VerifyMobile(session)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = codec.VerifySession(mobile)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedToken(t *testing.T) {
	codec := NewCodec(testSecret)

	raw, err := codec.SignMobile("user-1", "user@ex.com")
	require.NoError(t, err)

	tampered := raw[:len(raw)-2] + "xx"
	_, err = codec.VerifyMobile(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = codec.VerifyMobile("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredToken(t *testing.T) {
	codec := NewCodec(testSecret)

	// Hand-roll an already-expired mobile token with the same secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		Email: "user@ex.com",
		Typ:   TypeMobile,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-31 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	})
	raw, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = codec.VerifyMobile(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// Expired, tampered and malformed tokens all fail with the identical error
// value, so callers can't leak which case occurred.
func TestFailuresAreIndistinguishable(t *testing.T) {
	codec := NewCodec(testSecret)

	valid, err := codec.SignMobile("user-1", "user@ex.com")
	require.NoError(t, err)

	otherCodec := NewCodec("different-secret")
	wrongKey, err := otherCodec.SignMobile("user-1", "user@ex.com")
	require.NoError(t, err)

	for _, raw := range []string{"garbage", valid[:20], wrongKey} {
		_, err := codec.VerifyMobile(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

// A codec without a secret refuses both directions rather than signing with
// an empty key.
func TestEmptySecret(t *testing.T) {
	var codec Codec

	_, err := codec.SignSession("user-1", "user@ex.com", "", false)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = codec.SignMobile("user-1", "user@ex.com")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = codec.VerifySession("anything")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
