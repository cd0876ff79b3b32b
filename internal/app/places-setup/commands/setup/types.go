package setup

import (
	"runtime"

	"github.com/rotisserie/eris"

	"github.com/placeskit/places-setup/internal/app/places-setup/clients/browser"
	"github.com/placeskit/places-setup/internal/app/places-setup/clients/gcloud"
	"github.com/placeskit/places-setup/internal/app/places-setup/clients/keystore"
	"github.com/placeskit/places-setup/internal/app/places-setup/interfaces"
	"github.com/placeskit/places-setup/internal/app/places-setup/services/config"
	"github.com/placeskit/places-setup/internal/app/places-setup/services/input"
)

// Messages reported in SetupResult.Error.
const (
	MsgNotInstalled    = "Google Cloud SDK (gcloud) is not installed."
	MsgRestartRequired = "Google Cloud SDK (gcloud) was installed but is not visible to this terminal yet. " +
		"Restart your terminal and run places-setup again."
	MsgAuthFailed    = "Failed to authenticate with Google Cloud"
	MsgProjectFailed = "Failed to create project"
	MsgBillingFailed = "Failed to configure billing"
	MsgServiceFailed = "Failed to enable Places API"
	MsgKeyFailed     = "Failed to create API key"
	MsgCanceled      = "Setup canceled"
)

var (
	ErrNotInstalled          = eris.New(MsgNotInstalled)
	ErrRestartRequired       = eris.New(MsgRestartRequired)
	ErrAuthFailed            = eris.New(MsgAuthFailed)
	ErrProjectFailed         = eris.New(MsgProjectFailed)
	ErrTermsNotAccepted      = eris.New("Terms of Service not accepted")
	ErrTermsStillNotAccepted = eris.New("Terms of Service still not accepted")
	ErrBillingFailed         = eris.New(MsgBillingFailed)
	ErrServiceFailed         = eris.New(MsgServiceFailed)
	ErrKeyFailed             = eris.New(MsgKeyFailed)
	ErrRestrictFailed        = eris.New("Failed to restrict API key")
	ErrCanceled              = eris.New(MsgCanceled)
)

// Interface guard.
var _ interfaces.SetupHandler = (*Handler)(nil)

type Handler struct {
	// GOOS picks the gcloud installer; NewHandler sets it to runtime.GOOS.
	GOOS string

	gcloudClient   gcloud.ClientInterface
	browserClient  browser.ClientInterface
	inputService   input.ServiceInterface
	keystoreClient keystore.ClientInterface
	configService  config.ServiceInterface
}

func NewHandler(
	gcloudClient gcloud.ClientInterface,
	browserClient browser.ClientInterface,
	inputService input.ServiceInterface,
	keystoreClient keystore.ClientInterface,
	configService config.ServiceInterface,
) *Handler {
	return &Handler{
		GOOS:           runtime.GOOS,
		gcloudClient:   gcloudClient,
		browserClient:  browserClient,
		inputService:   inputService,
		keystoreClient: keystoreClient,
		configService:  configService,
	}
}
