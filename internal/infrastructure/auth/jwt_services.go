package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	pkgerrors "github.com/honeynil/headless-broker/pkg/errors"
)

// GenerateJWT issues an editor bearer token in the shape AuthMiddleware accepts.
// The CMS normally issues these; the broker needs it for tooling and tests.
func GenerateJWT(userID int64, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("%w: JWT secret not set", pkgerrors.ErrInvalidInput)
	}
	if userID <= 0 {
		return "", fmt.Errorf("%w: user id must be positive", pkgerrors.ErrInvalidInput)
	}
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
