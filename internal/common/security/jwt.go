package security

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// TokenAuth verifies bearer tokens on the mock judge side. The client never
// uses it: tokens are opaque to the client except for the exp and user_id
// claims, which it reads without verifying the signature.
var TokenAuth *jwtauth.JWTAuth

func InitJWT(secret []byte) {
	TokenAuth = jwtauth.New("HS256", secret, nil)
}

type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

func GenerateToken(userID string, kind TokenKind, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"typ":     string(kind),
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// TokenClaims are the fields the client reads out of its own access token.
type TokenClaims struct {
	UserID string `json:"user_id"`
	Kind   string `json:"typ"`
	jwt.RegisteredClaims
}

// DecodeUnverified parses a token without checking the signature. The client
// holds no signing key; it only needs the user id and expiry for routing and
// the refresh decision. The server remains the authority on validity.
func DecodeUnverified(raw string) (*TokenClaims, error) {
	if raw == "" {
		return nil, errors.New("empty token")
	}
	claims := &TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, errors.New("user_id claim is missing")
	}
	return claims, nil
}

// Expired reports whether the token's exp claim is in the past. Tokens
// without an exp claim are treated as expired.
func (c *TokenClaims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return c.ExpiresAt.Time.Before(now)
}
