// Package storage selects the object-storage adapter for a configured
// provider.
package storage

import (
	"fmt"

	"plaindoc/internal/config"
	"plaindoc/internal/domain"
	"plaindoc/internal/port"
	"plaindoc/internal/signer"
	"plaindoc/internal/storage/oss"
	"plaindoc/internal/storage/r2"
)

// NewUploader returns the adapter named by the config snapshot. The adapter
// validates its own credentials, so a misconfigured provider fails here,
// before any network activity.
func NewUploader(cfg *config.UploadConfig) (port.ObjectUploader, error) {
	switch cfg.Provider {
	case domain.ProviderR2, "":
		return r2.New(cfg.R2)
	case domain.ProviderOSS:
		sgn, err := signer.NewHMAC()
		if err != nil {
			return nil, err
		}
		return oss.New(cfg.OSS, sgn)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, cfg.Provider)
	}
}
