package claims

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoBearerToken is returned by ParseBearer when the Authorization value
// is missing or not a bearer token.
var ErrNoBearerToken = errors.New("claims: missing bearer token")

// Parser validates HMAC-signed tokens into MapClaims.
type Parser struct {
	secret []byte
}

// NewParser creates a Parser for tokens signed with the given HMAC secret.
func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

// Parse validates and parses a token string.
func (p *Parser) Parse(tokenString string) (jwt.MapClaims, error) {
	mapClaims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, mapClaims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("claims: unexpected signing method: %s", t.Method.Alg())
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("claims: parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("claims: invalid token")
	}
	return mapClaims, nil
}

// ParseBearer parses the value of an Authorization header in "Bearer <token>"
// form. It returns ErrNoBearerToken when the header is empty or malformed.
func (p *Parser) ParseBearer(authorization string) (jwt.MapClaims, error) {
	if authorization == "" {
		return nil, ErrNoBearerToken
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, ErrNoBearerToken
	}
	return p.Parse(parts[1])
}
