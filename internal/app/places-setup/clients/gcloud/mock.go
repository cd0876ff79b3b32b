package gcloud

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/placeskit/places-setup/internal/app/places-setup/models"
)

var _ ClientInterface = (*MockClient)(nil)

// MockClient is a mock implementation of ClientInterface for testing.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Run(ctx context.Context, status, command string) models.CommandResult {
	args := m.Called(ctx, status, command)
	return args.Get(0).(models.CommandResult) //nolint:errcheck // mock always returns a CommandResult
}
