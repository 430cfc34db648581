package utils

import (
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtKeyOnce sync.Once
	jwtKey     []byte
)

// signingKey reads JWT_SECRET on first use rather than at package init, so a
// value supplied through .env is picked up after godotenv has run.
func signingKey() []byte {
	jwtKeyOnce.Do(func() {
		jwtKey = []byte(os.Getenv("JWT_SECRET"))
	})
	return jwtKey
}

// SessionClaims carries the anonymous itinerary session id. There are no
// user accounts; the token only pins a browser to its session state.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

func CreateSessionToken(sessionID string, ttl time.Duration) (string, error) {
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return signingKey(), nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}
