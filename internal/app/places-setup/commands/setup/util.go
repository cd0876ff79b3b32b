package setup

import (
	"context"
	"strings"
	"time"

	"github.com/placeskit/places-setup/internal/pkg/logger"
	"github.com/placeskit/places-setup/internal/pkg/printer"
)

const (
	installURL = "https://cloud.google.com/sdk/docs/install"
	termsURL   = "https://console.cloud.google.com/terms/cloud"
)

func billingURL(projectID string) string {
	return "https://console.cloud.google.com/billing/linkedaccount?project=" + projectID
}

func credentialsURL(projectID string) string {
	return "https://console.cloud.google.com/apis/credentials?project=" + projectID
}

func dashboardURL(projectID string) string {
	return "https://console.cloud.google.com/home/dashboard?project=" + projectID
}

// openURL never fails the caller. When no browser can be launched the URL is printed instead.
func (h *Handler) openURL(url string) {
	if err := h.browserClient.OpenURL(url); err != nil {
		logger.Debugf("failed to open browser: %v", err)
		printer.Infof("Open this URL in your browser: %s\n", url)
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
