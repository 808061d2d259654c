package domain

// Provider identifies a storage backend kind.
type Provider string

const (
	// ProviderR2 is the S3-compatible backend; request signing is delegated
	// to the SDK client.
	ProviderR2 Provider = "r2"
	// ProviderOSS is the signature-based backend; requests carry a
	// hand-built HMAC authorization header.
	ProviderOSS Provider = "oss"
)
