package setup

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/placeskit/places-setup/internal/app/places-setup/common/dependency"
	"github.com/placeskit/places-setup/internal/app/places-setup/models"
	"github.com/placeskit/places-setup/internal/pkg/logger"
	"github.com/placeskit/places-setup/internal/pkg/printer"
)

// Preflight checks for gcloud and, when it is missing, attempts an unattended install.
func (h *Handler) Preflight(ctx context.Context) models.PreflightResult {
	if dependency.GCloud.Check(ctx, h.gcloudClient) {
		logger.Debug("gcloud is installed")
		return models.PreflightResult{Installed: true}
	}

	printer.Errorln(MsgNotInstalled)
	printer.Infoln(installInstructions(h.GOOS))

	if h.GOOS == "windows" {
		h.openURL(installURL + "#windows")
		printer.Notificationln("Run the installer, then restart your terminal.")
		return models.PreflightResult{NeedsRestart: true}
	}

	installCmd, ok := dependency.GCloud.InstallCommand(h.GOOS)
	if !ok {
		return models.PreflightResult{}
	}

	if missing := dependency.Resolve(ctx, h.gcloudClient, h.GOOS, dependency.InstallerPrerequisites(h.GOOS)...); len(missing) > 0 {
		depList, help := dependency.PrintStatus(missing)
		printer.Errorln("Cannot install gcloud automatically, missing:")
		printer.Info(depList)
		printer.Info(help)
		return models.PreflightResult{}
	}

	if !h.gcloudClient.Run(ctx, "Installing Google Cloud SDK...", installCmd).Success {
		return models.PreflightResult{}
	}
	if dependency.GCloud.Check(ctx, h.gcloudClient) {
		return models.PreflightResult{Installed: true}
	}
	return models.PreflightResult{Installed: true, NeedsRestart: true}
}

// ensureGCloud runs Preflight and, when the new binary is not yet visible, patches
// PATH for this process before giving up.
func (h *Handler) ensureGCloud(ctx context.Context) error {
	res := h.Preflight(ctx)
	switch {
	case res.Installed && !res.NeedsRestart:
		return nil
	case !res.NeedsRestart:
		return ErrNotInstalled
	}

	added := prependPath(gcloudInstallDirs(h.GOOS))
	logger.Debugf("added %v to PATH", added)
	if dependency.GCloud.Check(ctx, h.gcloudClient) {
		printer.Successln("Found gcloud after updating PATH")
		return nil
	}
	return ErrRestartRequired
}

func installInstructions(goos string) string {
	switch goos {
	case "darwin":
		return "Install it with Homebrew: brew install --cask google-cloud-sdk\nOr visit: " + installURL
	case "linux":
		return "Install it with: curl -sSL https://sdk.cloud.google.com | bash\nOr visit: " + installURL
	case "windows":
		return "Download the installer from: " + installURL + "#windows"
	default:
		return "Visit: " + installURL
	}
}

// gcloudInstallDirs lists where the installers put the gcloud binary.
func gcloudInstallDirs(goos string) []string {
	home, _ := os.UserHomeDir()
	if goos == "windows" {
		var dirs []string
		for _, env := range []string{"LOCALAPPDATA", "ProgramFiles(x86)", "ProgramFiles"} {
			if base := os.Getenv(env); base != "" {
				dirs = append(dirs, filepath.Join(base, "Google", "Cloud SDK", "google-cloud-sdk", "bin"))
			}
		}
		return dirs
	}

	dirs := []string{
		"/opt/homebrew/share/google-cloud-sdk/bin",
		"/usr/local/share/google-cloud-sdk/bin",
		"/opt/homebrew/bin",
		"/usr/local/bin",
	}
	if home != "" {
		dirs = append([]string{filepath.Join(home, "google-cloud-sdk", "bin")}, dirs...)
	}
	return dirs
}

// prependPath adds the dirs that are not on PATH yet and returns them.
func prependPath(dirs []string) []string {
	current := filepath.SplitList(os.Getenv("PATH"))
	var added []string
	for _, dir := range dirs {
		if dir != "" && !slices.Contains(current, dir) && !slices.Contains(added, dir) {
			added = append(added, dir)
		}
	}
	if len(added) == 0 {
		return nil
	}
	newPath := strings.Join(append(slices.Clone(added), current...), string(os.PathListSeparator))
	if err := os.Setenv("PATH", newPath); err != nil {
		logger.Warnf("failed to update PATH: %v", err)
		return nil
	}
	return added
}
