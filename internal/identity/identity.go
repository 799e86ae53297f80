// internal/identity/identity.go
//
// Identity handshake for the platform-embedded variant. The host platform
// (or our own login flow) hands the client a signed token; verifying it
// yields the one thing the engine ever consumes: an opaque username for
// leaderboard submission.

package identity

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure; callers do not need
// to distinguish why a handshake failed.
var ErrInvalidToken = errors.New("identity: invalid token")

// Claims is the identity payload carried by a handshake token.
type Claims struct {
	ID       string
	Username string
}

// Mint signs an HS256 token for the given identity with the given lifetime.
func Mint(id, username string, secret []byte, ttl time.Duration) (string, time.Time, error) {
	exp := time.Now().Add(ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       id,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      time.Now().Unix(),
	})
	ss, err := t.SignedString(secret)
	return ss, exp, err
}

// Verify parses and validates a handshake token, returning the identity it
// asserts. Any parse, signature, or expiry failure is ErrInvalidToken.
func Verify(token string, secret []byte) (*Claims, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	if id == "" || username == "" {
		return nil, ErrInvalidToken
	}
	return &Claims{ID: id, Username: username}, nil
}
