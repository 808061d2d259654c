package service

import (
	"context"
	"strings"

	"plaindoc/internal/config"
	"plaindoc/internal/domain"
	"plaindoc/internal/objectkey"
	"plaindoc/internal/port"
)

// UploaderFactory builds the storage adapter for the provider selected in a
// config snapshot.
type UploaderFactory func(cfg *config.UploadConfig) (port.ObjectUploader, error)

// UploadService routes an image to the configured storage backend and
// returns its public address.
type UploadService interface {
	Upload(ctx context.Context, cfg *config.UploadConfig, file domain.File) (*domain.UploadResult, error)
}

type uploadService struct {
	uploaderFor UploaderFactory
	log         port.Logger
}

// NewUploadService creates a new UploadService implementation.
func NewUploadService(uploaderFor UploaderFactory, log port.Logger) UploadService {
	return &uploadService{uploaderFor: uploaderFor, log: log}
}

// Upload validates the file is an image, derives its storage key, and
// dispatches to the configured adapter. Failures are logged with their call
// context and returned unchanged; a single failed attempt is a single
// failed call.
func (s *uploadService) Upload(ctx context.Context, cfg *config.UploadConfig, file domain.File) (*domain.UploadResult, error) {
	if !strings.HasPrefix(file.ContentType, "image/") {
		return nil, domain.ErrUnsupportedFileType
	}

	key := objectkey.Derive(file.Name, file.ContentType)

	uploader, err := s.uploaderFor(cfg)
	if err != nil {
		s.logFailure(cfg.Provider, file, err)
		return nil, err
	}

	result, err := uploader.Upload(ctx, port.Object{
		Key:         key,
		Data:        file.Data,
		ContentType: file.ContentType,
	})
	if err != nil {
		s.logFailure(cfg.Provider, file, err)
		return nil, err
	}
	return result, nil
}

func (s *uploadService) logFailure(provider domain.Provider, file domain.File, err error) {
	s.log.Error("upload failed", map[string]any{
		"provider": provider,
		"fileName": file.Name,
		"fileType": file.ContentType,
		"error":    err,
	})
}
