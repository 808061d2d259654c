package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockLogger is a mock implementation of port.Logger.
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Error(msg string, fields map[string]any) {
	m.Called(msg, fields)
}
