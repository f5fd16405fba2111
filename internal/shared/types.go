package shared

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload of a signed session token.
// Subject holds the user id (UUID), SessionID the Redis session key.
type SessionClaims struct {
	Username  string `json:"username"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
