package root

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/placeskit/places-setup/internal/app/places-setup/common/dependency"
	"github.com/placeskit/places-setup/internal/pkg/printer"
	"github.com/placeskit/places-setup/internal/pkg/tea/style"
)

var ErrGCloudMissing = eris.New("gcloud is not installed")

// Doctor reports gcloud and the tools needed to install it. Only a missing gcloud is an error.
func (h *Handler) Doctor(ctx context.Context) error {
	deps := append([]dependency.Dependency{dependency.GCloud}, dependency.InstallerPrerequisites(h.GOOS)...)
	statuses := dependency.Check(ctx, h.gcloudClient, deps...)

	depList, help := dependency.PrintStatus(statuses)
	printer.Infoln(style.Container.Render("--- Places Setup Doctor ---"))
	printer.NewLine(1)
	printer.Infoln("Checking dependencies...")
	printer.Info(depList)
	if help != "" {
		printer.NewLine(1)
		printer.Info(help)
	}
	printer.Infof("Config: %s\n", h.configService.Source())

	if !statuses[0].IsInstalled {
		return ErrGCloudMissing
	}
	return nil
}
