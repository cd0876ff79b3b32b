package root

import (
	"runtime"

	"github.com/placeskit/places-setup/internal/app/places-setup/clients/gcloud"
	"github.com/placeskit/places-setup/internal/app/places-setup/clients/keystore"
	"github.com/placeskit/places-setup/internal/app/places-setup/interfaces"
	"github.com/placeskit/places-setup/internal/app/places-setup/services/config"
)

// Interface guard.
var _ interfaces.RootHandler = (*Handler)(nil)

type Handler struct {
	AppVersion string
	GOOS       string

	gcloudClient   gcloud.ClientInterface
	keystoreClient keystore.ClientInterface
	configService  config.ServiceInterface
}

func NewHandler(
	appVersion string,
	gcloudClient gcloud.ClientInterface,
	keystoreClient keystore.ClientInterface,
	configService config.ServiceInterface,
) *Handler {
	return &Handler{
		AppVersion:     appVersion,
		GOOS:           runtime.GOOS,
		gcloudClient:   gcloudClient,
		keystoreClient: keystoreClient,
		configService:  configService,
	}
}
