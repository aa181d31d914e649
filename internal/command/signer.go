package command

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// Signer issues and verifies token signatures with a process-wide shared
// secret. Rotating the secret invalidates every previously issued link,
// which is acceptable: links are short-lived triggers, not durable
// capabilities.
type Signer struct {
	secret []byte
}

// NewSigner constructs a signer from the configured shared secret.
func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("shared secret required")
	}
	return &Signer{secret: []byte(secret)}, nil
}

// Sign computes the HMAC-SHA256 digest over the UTF-8 bytes of the token
// and renders it as lowercase hex.
func (s *Signer) Sign(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the expected signature and compares in constant
// time. The comparison must never short-circuit on secret-dependent
// data.
func (s *Signer) Verify(token, signature string) bool {
	expected := s.Sign(token)
	return hmac.Equal([]byte(expected), []byte(signature))
}
