// Package signer implements request signing for the signature-based backend.
package signer

import (
	"crypto"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"

	"plaindoc/internal/domain"
	"plaindoc/internal/port"
)

type hmacSigner struct{}

// NewHMAC returns the HMAC-SHA1 signer the backend's verification rule
// expects. It fails with domain.ErrSignerUnavailable when the SHA-1
// primitive has not been linked into the binary; that is a precondition
// failure, not something to retry.
func NewHMAC() (port.Signer, error) {
	if !crypto.SHA1.Available() {
		return nil, domain.ErrSignerUnavailable
	}
	return hmacSigner{}, nil
}

func (hmacSigner) Sign(secret, canonical string) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write([]byte(canonical))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
