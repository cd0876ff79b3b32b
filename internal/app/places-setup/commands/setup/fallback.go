package setup

import (
	"fmt"
	"os"
	"strings"

	"github.com/placeskit/places-setup/internal/app/places-setup/models"
	"github.com/placeskit/places-setup/internal/pkg/logger"
	"github.com/placeskit/places-setup/internal/pkg/printer"
)

// Recommendations renders the guidance shown when billing blocks the setup.
// The text depends only on its arguments.
func Recommendations(projectID string, opts *models.SetupOptions) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Places API setup: alternatives for project %s\n\n", projectID)

	b.WriteString("1. Alternative payment options\n")
	fmt.Fprintf(&b, "   - Link a billing account: %s\n", billingURL(projectID))
	b.WriteString("   - Google Cloud accepts credit and debit cards, and in some countries bank transfers.\n")
	b.WriteString("   - Ask your organization's billing administrator to link the project for you.\n\n")

	b.WriteString("2. Continue without billing (mock mode)\n")
	b.WriteString("   Get a placeholder API key for local development by running:\n")
	fmt.Fprintf(&b, "     %s\n\n", mockModeCommand(projectID, opts))

	b.WriteString("3. Startup and trial credits\n")
	b.WriteString("   - Google for Startups Cloud Program: https://cloud.google.com/startup\n")
	b.WriteString("   - Free trial credits for new accounts: https://cloud.google.com/free\n\n")

	b.WriteString("4. Your project\n")
	fmt.Fprintf(&b, "   Console: %s\n", dashboardURL(projectID))

	return b.String()
}

func mockModeCommand(projectID string, opts *models.SetupOptions) string {
	args := []string{"places-setup", "--project-id=" + projectID, "--mock-billing"}
	if opts.SkipAuth {
		args = append(args, "--skip-auth")
	}
	if opts.ProjectName != "" {
		args = append(args, fmt.Sprintf("--project-name=%q", opts.ProjectName))
	}
	return strings.Join(args, " ")
}

// emitFallback prints the recommendations and saves them next to other temp files.
// It does nothing once a degraded mode was chosen and never fails the run.
func (h *Handler) emitFallback(opts *models.SetupOptions, projectID string) {
	if opts.IsDegraded() {
		return
	}

	text := Recommendations(projectID, opts)
	printer.NewLine(1)
	printer.Info(text)

	path := h.configService.GetConfig().RecommendationsPath(projectID)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		logger.Debugf("failed to save recommendations to %s: %v", path, err)
		return
	}
	printer.Infof("These recommendations were saved to %s\n", path)
}
