package root

import (
	"github.com/rotisserie/eris"

	"github.com/placeskit/places-setup/internal/pkg/printer"
)

func (h *Handler) Version() error {
	printer.Infof("places-setup version %s\n", h.AppVersion)
	return nil
}

// ShowKey prints the API key saved for projectID with --save-key.
func (h *Handler) ShowKey(projectID string) error {
	if projectID == "" {
		return eris.New("project id is required")
	}
	key, err := h.keystoreClient.Load(projectID)
	if err != nil {
		return eris.Wrapf(err, "no API key saved for project %s", projectID)
	}
	printer.Infoln(key)
	return nil
}
