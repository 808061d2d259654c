package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockSigner is a mock implementation of port.Signer.
type MockSigner struct {
	mock.Mock
}

func (m *MockSigner) Sign(secret, canonical string) string {
	args := m.Called(secret, canonical)
	return args.String(0)
}
