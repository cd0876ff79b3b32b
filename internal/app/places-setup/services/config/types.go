package config

import (
	"path/filepath"
	"time"
)

// Config tunes the provisioning run. Every field has a default so the file is optional.
type Config struct {
	KeyDisplayName         string   `toml:"key_display_name"`
	TargetServices         []string `toml:"target_services"`
	DefaultProjectName     string   `toml:"default_project_name"`
	ProjectIDPrefix        string   `toml:"project_id_prefix"`
	TermsMaxRetries        int      `toml:"tos_max_retries"`
	TermsRetryDelaySeconds int      `toml:"tos_retry_delay_seconds"`
	KeySettleDelaySeconds  int      `toml:"key_settle_delay_seconds"`
	BillingMenuMaxViews    int      `toml:"billing_menu_max_views"`
	RecommendationsDir     string   `toml:"recommendations_dir"`
}

func (c *Config) TermsRetryDelay() time.Duration {
	return time.Duration(c.TermsRetryDelaySeconds) * time.Second
}

func (c *Config) KeySettleDelay() time.Duration {
	return time.Duration(c.KeySettleDelaySeconds) * time.Second
}

// RecommendationsPath is where the fallback guidance for projectID is written.
func (c *Config) RecommendationsPath(projectID string) string {
	return filepath.Join(c.RecommendationsDir, "places-api-recommendations-"+projectID+".txt")
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	// Path is the file the config was loaded from, empty when only defaults apply.
	Path   string
	Config Config
}

type ServiceInterface interface {
	// GetConfig returns the loaded config
	GetConfig() *Config
	// Source describes where the config came from
	Source() string
}
