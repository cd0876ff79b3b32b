package setup

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/placeskit/places-setup/internal/app/places-setup/models"
	"github.com/placeskit/places-setup/internal/pkg/logger"
	"github.com/placeskit/places-setup/internal/pkg/printer"
)

func (h *Handler) enableService(ctx context.Context, opts *models.SetupOptions) error {
	if opts.IsDegraded() {
		logger.Debug("degraded mode, not enabling services")
		return nil
	}

	targets := h.configService.GetConfig().TargetServices
	cmd := fmt.Sprintf("gcloud services enable %s --project=%s", strings.Join(targets, " "), opts.ProjectID)
	res := h.gcloudClient.Run(ctx, "Enabling Places API...", cmd)
	if res.Success {
		return nil
	}

	if !containsFold(res.Output, "billing") {
		logger.Errorf("service enable failed: %s", res.Output)
		return eris.Wrap(ErrServiceFailed, res.Output)
	}

	printer.Warnln("Billing must be enabled on the project before the Places API can be turned on.")
	h.emitFallback(opts, opts.ProjectID)

	if opts.AutoConfirm {
		return eris.Wrap(ErrServiceFailed, res.Output)
	}

	useMock, err := h.inputService.Confirm(ctx, "Continue in mock mode instead?", "y")
	if err != nil {
		return eris.Wrap(ErrServiceFailed, err.Error())
	}
	if !useMock {
		return eris.Wrap(ErrServiceFailed, res.Output)
	}

	opts.MockBilling = true
	return nil
}
