package setup

import (
	"github.com/placeskit/places-setup/internal/app/places-setup/models"
	"github.com/placeskit/places-setup/internal/pkg/printer"
	"github.com/placeskit/places-setup/internal/pkg/tea/style"
)

func (h *Handler) report(opts *models.SetupOptions, key *models.APIKeyRecord) {
	printer.NewLine(1)
	printer.Successln("Setup completed successfully!")
	printer.Infof("%s %s\n", style.BoldText.Render("Project ID:"), opts.ProjectID)
	printer.Infof("%s %s\n", style.BoldText.Render("API Key:"), key.APIKey)

	if key.IsMock {
		printer.NewLine(1)
		printer.Warnln("This is a mock API key and will not work against the Places API.")
		printer.Warnln("Link a billing account and run places-setup again to get a real key.")
	}

	printer.NewLine(1)
	printer.Notificationln("IMPORTANT: Save your API key securely and never share it publicly!")
	printer.Infoln("You may want to add HTTP referrer restrictions in the Google Cloud Console.")
	printer.Infoln("Visit: " + credentialsURL(opts.ProjectID))

	if key.IsMock {
		if opts.CopyKey || opts.SaveKey {
			printer.Infoln("Skipping clipboard and keyring for a mock key.")
		}
		return
	}
	h.storeKey(opts, key)
}

// storeKey hands the key to the clipboard and keyring when asked. Failures are warnings.
func (h *Handler) storeKey(opts *models.SetupOptions, key *models.APIKeyRecord) {
	if opts.CopyKey {
		if err := h.keystoreClient.CopyToClipboard(key.APIKey); err != nil {
			printer.Warnf("Could not copy the API key to the clipboard: %v\n", err)
		} else {
			printer.Successln("API key copied to the clipboard")
		}
	}
	if opts.SaveKey {
		if err := h.keystoreClient.Save(opts.ProjectID, key.APIKey); err != nil {
			printer.Warnf("Could not save the API key to the keyring: %v\n", err)
		} else {
			printer.Successf("API key saved to the system keyring (account %s)\n", opts.ProjectID)
		}
	}
}
