package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"plaindoc/internal/config"
	"plaindoc/internal/domain"
)

// MockUploadService is a mock implementation of service.UploadService.
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, cfg *config.UploadConfig, file domain.File) (*domain.UploadResult, error) {
	args := m.Called(ctx, cfg, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadResult), args.Error(1)
}
