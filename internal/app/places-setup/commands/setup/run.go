package setup

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/placeskit/places-setup/internal/app/places-setup/models"
	"github.com/placeskit/places-setup/internal/pkg/logger"
	"github.com/placeskit/places-setup/internal/pkg/printer"
	"github.com/placeskit/places-setup/internal/pkg/tea/component/program"
	"github.com/placeskit/places-setup/internal/pkg/tea/style"
)

// Run executes the provisioning stages in order. It is the only place a stage
// failure becomes a SetupResult error. An interrupted context stops the run after
// the current stage, whatever that stage returned.
func (h *Handler) Run(ctx context.Context, opts *models.SetupOptions) models.SetupResult {
	ctx, stop := program.WithInterrupt(ctx)
	defer stop()

	printer.Infoln(style.CLIHeader("Google Places API Setup", ""))
	logger.Debugf("config loaded from %s", h.configService.Source())

	if err := interrupted(ctx, h.ensureGCloud(ctx)); err != nil {
		return failed(opts, err)
	}
	if err := interrupted(ctx, h.authenticate(ctx, opts)); err != nil {
		return failed(opts, err)
	}
	if err := interrupted(ctx, h.resolveProject(ctx, opts)); err != nil {
		return failed(opts, err)
	}
	if err := interrupted(ctx, h.createProject(ctx, opts)); err != nil {
		return failed(opts, err)
	}
	if err := interrupted(ctx, h.configureBilling(ctx, opts)); err != nil {
		return failed(opts, err)
	}
	if err := interrupted(ctx, h.enableService(ctx, opts)); err != nil {
		return failed(opts, err)
	}

	key, err := h.issueKey(ctx, opts)
	if err = interrupted(ctx, err); err != nil {
		return failed(opts, err)
	}

	if err := h.restrictKey(ctx, opts, key); err != nil {
		if ctx.Err() != nil {
			printer.Warnf("The API key %s was created but not restricted. Restrict it at %s\n",
				key.KeyID, credentialsURL(opts.ProjectID))
			return failed(opts, interrupted(ctx, err))
		}
		logger.Warnf("api key restriction failed: %v", err)
		printer.Warnf("Could not restrict the API key. Restrict it manually at %s\n", credentialsURL(opts.ProjectID))
	}

	h.report(opts, key)

	return models.SetupResult{
		Success:   true,
		APIKey:    key.APIKey,
		ProjectID: opts.ProjectID,
		IsMock:    key.IsMock || opts.IsDegraded(),
	}
}

// interrupted replaces err with ErrCanceled once ctx is done.
func interrupted(ctx context.Context, err error) error {
	if ctx.Err() == nil {
		return err
	}
	return eris.Wrap(ErrCanceled, context.Cause(ctx).Error())
}

func failed(opts *models.SetupOptions, err error) models.SetupResult {
	logger.Error(eris.ToString(err, true))
	return models.SetupResult{
		Success:   false,
		ProjectID: opts.ProjectID,
		IsMock:    opts.IsDegraded(),
		Error:     errorMessage(err),
	}
}

// errorMessage maps a stage error to the message reported to the operator.
func errorMessage(err error) string {
	switch {
	case eris.Is(err, ErrCanceled):
		return MsgCanceled
	case eris.Is(err, ErrTermsStillNotAccepted):
		return MsgProjectFailed + ": " + ErrTermsStillNotAccepted.Error()
	case eris.Is(err, ErrNotInstalled):
		return MsgNotInstalled
	case eris.Is(err, ErrRestartRequired):
		return MsgRestartRequired
	case eris.Is(err, ErrAuthFailed):
		return MsgAuthFailed
	case eris.Is(err, ErrProjectFailed):
		return MsgProjectFailed
	case eris.Is(err, ErrBillingFailed):
		return MsgBillingFailed
	case eris.Is(err, ErrServiceFailed):
		return MsgServiceFailed
	case eris.Is(err, ErrKeyFailed):
		return MsgKeyFailed
	default:
		return err.Error()
	}
}
