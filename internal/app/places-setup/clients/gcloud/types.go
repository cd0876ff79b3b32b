package gcloud

import (
	"context"

	"github.com/placeskit/places-setup/internal/app/places-setup/models"
)

// ClientInterface runs external commands and normalizes every outcome into a CommandResult.
type ClientInterface interface {
	// Run executes command. A non-empty status shows a spinner for the duration of
	// the invocation and a success or failure line once it finishes.
	Run(ctx context.Context, status, command string) models.CommandResult
}

var _ ClientInterface = (*Client)(nil)

type Client struct {
	// Env is added to the environment of every invocation.
	Env map[string]string
}

func NewClient() ClientInterface {
	return &Client{
		Env: map[string]string{
			// keep gcloud from asking questions we cannot forward
			"CLOUDSDK_CORE_DISABLE_PROMPTS": "1",
		},
	}
}
