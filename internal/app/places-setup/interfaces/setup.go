package interfaces

import (
	"context"

	"github.com/placeskit/places-setup/internal/app/places-setup/models"
)

// SetupHandler runs the provisioning pipeline.
type SetupHandler interface {
	// Run executes every stage in order and never returns an error; failures are
	// reported through SetupResult.Error.
	Run(ctx context.Context, opts *models.SetupOptions) models.SetupResult
}

// RootHandler serves the auxiliary commands.
type RootHandler interface {
	Doctor(ctx context.Context) error
	Version() error
	ShowKey(projectID string) error
}
