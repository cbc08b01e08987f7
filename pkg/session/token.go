// Package session signs and verifies the web frontend's session cookie.
//
// The cookie replaces the in-memory currentUser of a browser client: it holds
// the identity, display name, role and (for couriers) delivery area of the
// signed-in account, and nothing the backend treats as authoritative.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the standard JWT claims plus the account snapshot the view
// layer needs on every request without calling the backend.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
	Role string `json:"role"` // customer | admin | serviceOfferor | courier
	Area string `json:"area,omitempty"`
}

// Generate issues a signed session token for the account.
func Generate(secret, accountID, name, role, area, issuer string, ttlMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("session: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(ttlMinutes) * time.Minute)),
		},
		Name: name,
		Role: role,
		Area: area,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse validates the token and returns its claims. Returns an error for an
// invalid, expired or wrongly signed token.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("session: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}
