package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrUnknownProvider     = errors.New("unknown storage provider")
	ErrSignerUnavailable   = errors.New("sha-1 primitive is not available in this runtime")
)

// ConfigError reports a missing or incomplete credential field for the
// selected provider. It is raised before any request is sent.
type ConfigError struct {
	Provider Provider
	Field    string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: missing required config field %q", e.Provider, e.Field)
}

// UploadError is a non-success HTTP response from a storage backend.
type UploadError struct {
	StatusCode int
	Body       string
}

func (e *UploadError) Error() string {
	body := e.Body
	if body == "" {
		body = "(no response body)"
	}
	return fmt.Sprintf("upload failed with status %d: %s", e.StatusCode, body)
}
