// Package flash encodes the single-slot notification cookie of the web
// frontend. A notification survives exactly one redirect: the middleware
// reads it, hands it to the next render and deletes the cookie. Writing a
// new notification overwrites the previous one, so the rendered toast always
// owns its own hide timer.
package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrInvalid marks a flash cookie that failed signature or shape checks.
var ErrInvalid = errors.New("invalid flash cookie")

// Kinds of notifications; they map to toast styles in the templates.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
)

// Flash is one notification.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Codec signs and verifies flash cookie values.
type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

// NewCodec builds a codec for the given HMAC secret.
func NewCodec(secret []byte, cookieName string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: cookieName, Secure: secure}
}

// Encode serializes a flash as base64(json).base64(hmac).
func (c *Codec) Encode(f Flash) (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

// Decode verifies and deserializes a flash cookie value.
func (c *Codec) Decode(v string) (*Flash, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return nil, ErrInvalid
	}
	payload, sig := parts[0], parts[1]
	if !verify(c.Secret, payload, sig) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}
	var f Flash
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, ErrInvalid
	}
	if strings.TrimSpace(f.Message) == "" {
		return nil, ErrInvalid
	}
	return &f, nil
}

// CookieMaxAge bounds how long an unread flash survives.
func (c *Codec) CookieMaxAge() int {
	// Short-lived: it only has to outlast one redirect.
	return int((2 * time.Minute).Seconds())
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
