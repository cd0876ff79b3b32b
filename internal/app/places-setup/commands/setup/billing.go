package setup

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/placeskit/places-setup/internal/app/places-setup/models"
	"github.com/placeskit/places-setup/internal/pkg/printer"
)

const (
	billingLinked = iota
	billingSkip
	billingMock
	billingAlternatives
)

//nolint:gochecknoglobals // read only menu labels
var billingOptions = []string{
	billingLinked:       "I have linked a billing account",
	billingSkip:         "Skip billing for now",
	billingMock:         "Use mock mode (placeholder API key for development)",
	billingAlternatives: "Show alternatives",
}

func (h *Handler) configureBilling(ctx context.Context, opts *models.SetupOptions) error {
	if opts.NoBilling {
		printer.Infoln("Skipping billing setup.")
		return nil
	}
	if opts.MockBilling {
		printer.Infoln("Using mock billing mode.")
		return nil
	}

	url := billingURL(opts.ProjectID)
	printer.Infof("Link a billing account to project %s: %s\n", opts.ProjectID, url)
	h.openURL(url)

	if opts.AutoConfirm {
		printer.Notificationln("Continuing on the assumption that billing is linked.")
		return nil
	}

	maxViews := h.configService.GetConfig().BillingMenuMaxViews
	for views := 0; ; {
		options := billingOptions[:billingAlternatives]
		if views < maxViews {
			options = billingOptions
		}

		choice, err := h.inputService.Select(ctx, "Billing", "Choose how to continue", options, billingLinked)
		if err != nil {
			return eris.Wrap(ErrBillingFailed, err.Error())
		}

		switch choice {
		case billingLinked:
			return nil
		case billingSkip:
			printer.Warnln("Continuing without billing. A placeholder API key will be issued.")
			opts.NoBilling = true
			return nil
		case billingMock:
			printer.Warnln("Continuing in mock mode. A placeholder API key will be issued.")
			opts.MockBilling = true
			return nil
		case billingAlternatives:
			views++
			h.emitFallback(opts, opts.ProjectID)
		default:
			return eris.Wrapf(ErrBillingFailed, "unexpected choice %d", choice)
		}
	}
}
