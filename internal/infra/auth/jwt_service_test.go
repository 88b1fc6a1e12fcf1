package auth

import (
	"testing"
	"time"

	"shelf/config"
	"shelf/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_that_is_long_enough_for_hs256"

func newTestConfig(secret string, expiration int) *config.Config {
	cfg := &config.Config{}
	cfg.JWT = &config.JWTConfig{
		Secret:     secret,
		Expiration: expiration,
		Issuer:     "shelf-items-service",
	}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, 86400))
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Login: "a@b.com"}

	token, err := svc.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, user.Login, claims.Login)
	assert.Equal(t, "shelf-items-service", claims.Issuer)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_RefusesShortSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("too-short", 86400))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")

	_, err = NewJWTService(newTestConfig("", 86400))
	require.Error(t, err)
}

func TestJWTService_ExpiredTokenFails(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, -60))
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Login: "a@b.com"}
	token, err := svc.Issue(user)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_TamperedSignatureFails(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, 86400))
	require.NoError(t, err)

	other, err := NewJWTService(newTestConfig("a_completely_different_secret_key_of_size", 86400))
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Login: "a@b.com"}
	token, err := other.Issue(user)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_MalformedTokenFails(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, 86400))
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "aa.bb.cc"} {
		claims, verifyErr := svc.Verify(token)
		assert.Nil(t, claims)
		// Malformed, tampered and expired tokens are indistinguishable.
		assert.ErrorIs(t, verifyErr, ErrInvalidToken)
	}
}

func TestJWTService_RejectsNonHMACAlgorithm(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, 86400))
	require.NoError(t, err)

	// alg=none with an empty signature must not be accepted.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
