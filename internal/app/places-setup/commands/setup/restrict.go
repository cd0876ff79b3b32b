package setup

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/placeskit/places-setup/internal/app/places-setup/models"
)

// restrictKey limits key to the target services. Its error is a warning for the caller.
func (h *Handler) restrictKey(ctx context.Context, opts *models.SetupOptions, key *models.APIKeyRecord) error {
	if opts.IsDegraded() || key.IsMock {
		return nil
	}

	var cmd strings.Builder
	cmd.WriteString("gcloud alpha services api-keys update " + key.KeyID)
	for _, svc := range h.configService.GetConfig().TargetServices {
		cmd.WriteString(" --api-target=service=" + svc)
	}
	cmd.WriteString(" --project=" + opts.ProjectID)

	if res := h.gcloudClient.Run(ctx, "Restricting API key...", cmd.String()); !res.Success {
		return eris.Wrap(ErrRestrictFailed, res.Output)
	}
	return nil
}
