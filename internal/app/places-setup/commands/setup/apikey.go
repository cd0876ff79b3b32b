package setup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"

	"github.com/placeskit/places-setup/internal/app/places-setup/models"
	"github.com/placeskit/places-setup/internal/pkg/logger"
	"github.com/placeskit/places-setup/internal/pkg/printer"
)

const (
	MockKeyMarker = "AIzaMOCK"

	mockKeyIDPrefix     = "mock-key-"
	mockKeyIDLength     = 12
	mockKeySecretLength = 31
)

var (
	ErrMalformedOutput = eris.New("unexpected gcloud output")
	ErrKeyNotFound     = eris.New("created API key not found")
)

// issueKey creates an API key, or synthesizes a placeholder in degraded mode.
func (h *Handler) issueKey(ctx context.Context, opts *models.SetupOptions) (*models.APIKeyRecord, error) {
	if opts.IsDegraded() {
		printer.Warnln("Generating a mock API key.")
		return newMockKey(), nil
	}

	cfg := h.configService.GetConfig()
	create := fmt.Sprintf("gcloud alpha services api-keys create --display-name=%s --project=%s",
		shellescape.Quote(cfg.KeyDisplayName), opts.ProjectID)
	if res := h.gcloudClient.Run(ctx, "Creating API key...", create); !res.Success {
		logger.Errorf("api key create failed: %s", res.Output)
		return nil, eris.Wrap(ErrKeyFailed, res.Output)
	}

	// the new key is not listed right away
	if err := sleep(ctx, cfg.KeySettleDelay()); err != nil {
		return nil, eris.Wrap(ErrKeyFailed, err.Error())
	}

	list := h.gcloudClient.Run(ctx, "Looking up API key...",
		fmt.Sprintf("gcloud alpha services api-keys list --project=%s --format=json", opts.ProjectID))
	if !list.Success {
		return nil, eris.Wrap(ErrKeyFailed, list.Output)
	}
	keyID, err := findKeyID(list.Output, cfg.KeyDisplayName)
	if err != nil {
		logger.Errorf("failed to find api key: %v", err)
		return nil, eris.Wrap(ErrKeyFailed, err.Error())
	}

	keyString := h.gcloudClient.Run(ctx, "Retrieving API key...",
		fmt.Sprintf("gcloud alpha services api-keys get-key-string %s --project=%s --format=json",
			keyID, opts.ProjectID))
	if !keyString.Success {
		return nil, eris.Wrap(ErrKeyFailed, keyString.Output)
	}
	apiKey, err := parseKeyString(keyString.Output)
	if err != nil {
		logger.Errorf("failed to read api key: %v", err)
		return nil, eris.Wrap(ErrKeyFailed, err.Error())
	}

	return &models.APIKeyRecord{APIKey: apiKey, KeyID: keyID}, nil
}

// findKeyID scans the JSON key list for displayName. The id is the key's uid,
// or the last segment of its resource name. Reused projects may hold older keys
// with the same name, so the most recently created match wins.
func findKeyID(output, displayName string) (string, error) {
	if !gjson.Valid(output) {
		return "", eris.Wrap(ErrMalformedOutput, "key list is not valid JSON")
	}
	keys := gjson.Parse(output)
	if !keys.IsArray() {
		return "", eris.Wrap(ErrMalformedOutput, "key list is not a JSON array")
	}

	var (
		keyID  string
		newest time.Time
	)
	keys.ForEach(func(_, key gjson.Result) bool {
		if key.Get("displayName").String() != displayName {
			return true
		}
		id := key.Get("uid").String()
		if id == "" {
			name := key.Get("name").String()
			id = name[strings.LastIndex(name, "/")+1:]
		}
		if id == "" {
			return true
		}
		// keys without a parseable createTime keep list order
		created, err := time.Parse(time.RFC3339Nano, key.Get("createTime").String())
		if err != nil || !created.Before(newest) {
			keyID = id
			if err == nil {
				newest = created
			}
		}
		return true
	})

	if keyID == "" {
		return "", eris.Wrapf(ErrKeyNotFound, "no key named %q", displayName)
	}
	return keyID, nil
}

func parseKeyString(output string) (string, error) {
	if !gjson.Valid(output) {
		return "", eris.Wrap(ErrMalformedOutput, "key string response is not valid JSON")
	}
	keyString := gjson.Get(output, "keyString").String()
	if keyString == "" {
		return "", eris.Wrap(ErrMalformedOutput, "key string response has no keyString")
	}
	return keyString, nil
}

func newMockKey() *models.APIKeyRecord {
	hex := func() string { return strings.ReplaceAll(uuid.NewString(), "-", "") }
	return &models.APIKeyRecord{
		APIKey: MockKeyMarker + hex()[:mockKeySecretLength],
		KeyID:  mockKeyIDPrefix + hex()[:mockKeyIDLength],
		IsMock: true,
	}
}
