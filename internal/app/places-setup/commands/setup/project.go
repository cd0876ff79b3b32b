package setup

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/placeskit/places-setup/internal/app/places-setup/models"
	"github.com/placeskit/places-setup/internal/pkg/logger"
	"github.com/placeskit/places-setup/internal/pkg/printer"
)

const (
	projectIDSuffixLength = 6
	projectIDRule         = "use 6-30 lowercase letters, digits or hyphens, starting with a letter"
)

var projectIDPattern = regexp.MustCompile(`^[a-z][a-z0-9-]{4,28}[a-z0-9]$`)

// resolveProject fills in a missing project id and name, asking the operator when
// running interactively.
func (h *Handler) resolveProject(ctx context.Context, opts *models.SetupOptions) error {
	cfg := h.configService.GetConfig()

	if opts.ProjectID == "" {
		suggested := generateProjectID(cfg.ProjectIDPrefix)
		opts.ProjectID = suggested
		if !opts.AutoConfirm {
			id, err := h.promptProjectID(ctx, suggested)
			if err != nil {
				return eris.Wrap(ErrProjectFailed, err.Error())
			}
			opts.ProjectID = id
		}
	}
	if !projectIDPattern.MatchString(opts.ProjectID) {
		return eris.Wrapf(ErrProjectFailed, "invalid project id %q: %s", opts.ProjectID, projectIDRule)
	}

	if opts.ProjectName == "" {
		opts.ProjectName = cfg.DefaultProjectName
		if !opts.AutoConfirm {
			name, err := h.inputService.Prompt(ctx, "Enter your project name", cfg.DefaultProjectName)
			if err != nil {
				return eris.Wrap(ErrProjectFailed, err.Error())
			}
			opts.ProjectName = strings.TrimSpace(name)
		}
	}
	return nil
}

// promptProjectID asks until the operator enters a valid id or the input is canceled.
func (h *Handler) promptProjectID(ctx context.Context, suggested string) (string, error) {
	for {
		id, err := h.inputService.Prompt(ctx, "Enter your project ID (must be globally unique)", suggested)
		if err != nil {
			return "", err
		}
		id = strings.TrimSpace(id)
		if projectIDPattern.MatchString(id) {
			return id, nil
		}
		printer.Errorf("Invalid project ID %q: %s\n", id, projectIDRule)
	}
}

func generateProjectID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:projectIDSuffixLength]
	return prefix + "-" + suffix
}

// createProject creates the project, handling the Terms of Service gate and
// projects that already exist, then makes it the active gcloud project.
func (h *Handler) createProject(ctx context.Context, opts *models.SetupOptions) error {
	cmd := fmt.Sprintf("gcloud projects create %s --name=%s", opts.ProjectID, shellescape.Quote(opts.ProjectName))

	for retries := 0; ; retries++ {
		res := h.gcloudClient.Run(ctx, "Creating project "+opts.ProjectID+"...", cmd)
		if res.Success {
			break
		}

		if isTermsRejection(res.Output) {
			if err := h.handleTerms(ctx, opts, retries); err != nil {
				return err
			}
			continue
		}

		if isAlreadyExists(res.Output) && h.projectExists(ctx, opts.ProjectID) {
			printer.Infof("Project %s already exists, reusing it\n", opts.ProjectID)
			break
		}

		logger.Errorf("project creation failed: %s", res.Output)
		h.emitFallback(opts, opts.ProjectID)
		return eris.Wrap(ErrProjectFailed, res.Output)
	}

	return h.selectProject(ctx, opts)
}

// handleTerms decides whether a Terms of Service rejection may be retried.
// A nil return means the operator accepted the terms and the create should run again.
func (h *Handler) handleTerms(ctx context.Context, opts *models.SetupOptions, retries int) error {
	maxRetries := h.configService.GetConfig().TermsMaxRetries

	if opts.AutoConfirm {
		h.openURL(termsURL)
		printer.Warnln("You need to accept the Google Cloud Terms of Service before creating a project.")
		printer.Infof("Accept them at %s and run places-setup again.\n", termsURL)
		return eris.Wrap(ErrProjectFailed, ErrTermsNotAccepted.Error())
	}

	if retries >= maxRetries {
		printer.Errorf("The Terms of Service still appear unaccepted after %d retries.\n", retries)
		return eris.Wrap(ErrTermsStillNotAccepted, MsgProjectFailed)
	}

	h.openURL(termsURL)
	printer.Warnln("You need to accept the Google Cloud Terms of Service before creating a project.")
	accepted, err := h.inputService.Confirm(ctx, "Have you accepted the Terms of Service?", "y")
	if err != nil {
		return eris.Wrap(ErrProjectFailed, err.Error())
	}
	if !accepted {
		return eris.Wrap(ErrProjectFailed, ErrTermsNotAccepted.Error())
	}

	// acceptance takes a moment to propagate
	if err := sleep(ctx, h.configService.GetConfig().TermsRetryDelay()); err != nil {
		return eris.Wrap(ErrProjectFailed, err.Error())
	}
	return nil
}

func (h *Handler) projectExists(ctx context.Context, projectID string) bool {
	return h.gcloudClient.Run(ctx, "", "gcloud projects describe "+projectID).Success
}

// selectProject makes projectID the active gcloud project. When that fails in
// auto-confirm or mock mode the run continues in mock mode.
func (h *Handler) selectProject(ctx context.Context, opts *models.SetupOptions) error {
	res := h.gcloudClient.Run(ctx, "Setting active project...", "gcloud config set project "+opts.ProjectID)
	if res.Success {
		return nil
	}

	if opts.AutoConfirm || opts.MockBilling {
		logger.Warnf("failed to set active project, continuing in mock mode: %s", res.Output)
		printer.Warnln("Could not set the active project. Continuing in mock mode.")
		opts.MockBilling = true
		return nil
	}
	return eris.Wrap(ErrProjectFailed, res.Output)
}

func isTermsRejection(output string) bool {
	return strings.Contains(output, "Terms of Service")
}

func isAlreadyExists(output string) bool {
	return containsFold(output, "already exists") || containsFold(output, "already in use")
}
