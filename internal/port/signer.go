package port

// Signer computes the keyed-hash signature over a canonical request string
// for the signature-based backend. The same inputs always produce the same
// signature.
type Signer interface {
	// Sign returns the standard base64 encoding of the raw digest, keyed by
	// the UTF-8 bytes of secret.
	Sign(secret, canonical string) string
}
