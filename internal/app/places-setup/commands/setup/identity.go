package setup

import (
	"context"

	"github.com/placeskit/places-setup/internal/app/places-setup/models"
	"github.com/placeskit/places-setup/internal/pkg/logger"
	"github.com/placeskit/places-setup/internal/pkg/printer"
)

func (h *Handler) authenticate(ctx context.Context, opts *models.SetupOptions) error {
	if opts.SkipAuth {
		logger.Debug("skipping authentication")
		return nil
	}

	printer.Infoln("A browser window will open to sign in to Google Cloud.")
	res := h.gcloudClient.Run(ctx, "Authenticating with Google Cloud...", "gcloud auth login")
	if !res.Success {
		logger.Errorf("gcloud auth login failed: %s", res.Output)
		return ErrAuthFailed
	}
	return nil
}
