package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"plaindoc/internal/domain"
	"plaindoc/internal/port"
)

// MockObjectUploader is a mock implementation of port.ObjectUploader.
type MockObjectUploader struct {
	mock.Mock
}

func (m *MockObjectUploader) Upload(ctx context.Context, obj port.Object) (*domain.UploadResult, error) {
	args := m.Called(ctx, obj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadResult), args.Error(1)
}
