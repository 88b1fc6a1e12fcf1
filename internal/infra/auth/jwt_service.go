package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"shelf/config"
	"shelf/internal/domain/entity"
	"shelf/internal/domain/service"
)

const minSecretLength = 32

// ErrInvalidToken is the single failure returned by Verify. Malformed,
// tampered and expired tokens all collapse into it so the response never
// leaks which check rejected the token.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewJWTService is the constructor for jwtService. It refuses to start with a
// secret shorter than 32 bytes.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if len(cfg.JWT.Secret) < minSecretLength {
		return nil, errors.Errorf("jwt secret must be at least %d characters long", minSecretLength)
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		ttl:    time.Duration(cfg.JWT.Expiration) * time.Second,
		issuer: cfg.JWT.Issuer,
	}, nil
}

// Issue creates a signed HS256 token for the given identity. Subject carries
// the identity id; issuer, issued-at and expiry are stamped on every token.
func (s *jwtService) Issue(user *entity.User) (string, error) {
	now := time.Now()
	claims := service.Claims{
		Login: user.Login,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses the token, enforcing the HMAC signing method, the signature
// and the expiry in one pass.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
