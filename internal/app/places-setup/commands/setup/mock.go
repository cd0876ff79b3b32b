package setup

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/placeskit/places-setup/internal/app/places-setup/interfaces"
	"github.com/placeskit/places-setup/internal/app/places-setup/models"
)

// Interface guard.
var _ interfaces.SetupHandler = (*MockHandler)(nil)

type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Run(ctx context.Context, opts *models.SetupOptions) models.SetupResult {
	args := m.Called(ctx, opts)
	return args.Get(0).(models.SetupResult) //nolint:errcheck // mock always returns a SetupResult
}
