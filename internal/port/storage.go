package port

import (
	"context"

	"plaindoc/internal/domain"
)

// Object is the materialized payload handed to a storage adapter. Data is a
// fixed-length buffer, never a stream.
type Object struct {
	Key         string
	Data        []byte
	ContentType string
}

// ObjectUploader performs one authenticated write and reports where the
// object ended up. Implementations validate their own credentials and build
// their own request; they never retry.
type ObjectUploader interface {
	Upload(ctx context.Context, obj Object) (*domain.UploadResult, error)
}
