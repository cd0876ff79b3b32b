package root

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/placeskit/places-setup/internal/app/places-setup/interfaces"
)

// Interface guard.
var _ interfaces.RootHandler = (*MockHandler)(nil)

type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Doctor(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHandler) Version() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockHandler) ShowKey(projectID string) error {
	args := m.Called(projectID)
	return args.Error(0)
}
