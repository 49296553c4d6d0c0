// Package signing implements the shared-secret HMAC scheme used on the
// bot -> query-service boundary. The signature is an HMAC-SHA256 over the
// exact serialized request body, hex encoded, carried in the X-Signature
// header.
package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// Header carries the hex-encoded request signature.
const Header = "X-Signature"

var (
	// ErrMissingSignature is returned when no signature was supplied.
	ErrMissingSignature = errors.New("missing signature")
	// ErrInvalidSignature is returned when the supplied signature does not
	// match the request body.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrNoSecret is returned when no shared secret is configured. This is
	// a server configuration fault, not a client error.
	ErrNoSecret = errors.New("signing secret not configured")
)

// Sign computes the hex-encoded HMAC-SHA256 of body under secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a hex-encoded signature against body using a constant-time
// comparison.
func Verify(secret string, body []byte, signature string) error {
	if secret == "" {
		return ErrNoSecret
	}
	if signature == "" {
		return ErrMissingSignature
	}
	expected := Sign(secret, body)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

// Prefix returns a short diagnostic prefix of a signature. Full signature
// values never appear in logs.
func Prefix(signature string) string {
	if len(signature) <= 8 {
		return signature
	}
	return signature[:8] + "..."
}
