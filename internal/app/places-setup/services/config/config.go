package config

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml/v2"
	"github.com/rotisserie/eris"

	"github.com/placeskit/places-setup/internal/pkg/logger"
)

const (
	ConfigFileEnvVariable = "PLACES_SETUP_CONFIG_FILE"
	ConfigFilename        = "places-setup.toml"

	maxProjectIDPrefixLength = 23 // leaves room for "-" and a 6 character suffix
)

var (
	ErrInvalidConfig = eris.New("invalid config")

	projectIDPrefixPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		KeyDisplayName:         "places-api-key",
		TargetServices:         []string{"places-backend.googleapis.com", "places.googleapis.com"},
		DefaultProjectName:     "Places API Project",
		ProjectIDPrefix:        "places-api",
		TermsMaxRetries:        3, //nolint:mnd // documented default
		TermsRetryDelaySeconds: 3, //nolint:mnd // documented default
		KeySettleDelaySeconds:  5, //nolint:mnd // documented default
		BillingMenuMaxViews:    3, //nolint:mnd // documented default
		RecommendationsDir:     os.TempDir(),
	}
}

// NewService loads configuration from configFile, from the file named by
// PLACES_SETUP_CONFIG_FILE, or from the nearest places-setup.toml above the
// working directory, in that order. Without any file the defaults are used.
func NewService(configFile string) (ServiceInterface, error) {
	path, err := findConfigFile(configFile)
	if err != nil {
		return nil, err
	}

	service := &Service{Path: path, Config: Default()}
	if path == "" {
		logger.Debug("no config file found, using defaults")
		return service, nil
	}

	if err := loadFile(path, &service.Config); err != nil {
		return nil, err
	}
	if err := service.Config.Validate(); err != nil {
		return nil, eris.Wrapf(err, "config file %s", path)
	}

	logger.Debugf("successfully loaded config from %q", path)
	return service, nil
}

func (s *Service) GetConfig() *Config {
	return &s.Config
}

func (s *Service) Source() string {
	if s.Path == "" {
		return "built-in defaults"
	}
	return s.Path
}

// Validate reports the first invalid value.
func (c *Config) Validate() error {
	switch {
	case c.KeyDisplayName == "":
		return eris.Wrap(ErrInvalidConfig, "key_display_name cannot be empty")
	case len(c.TargetServices) == 0:
		return eris.Wrap(ErrInvalidConfig, "target_services cannot be empty")
	case len(c.ProjectIDPrefix) > maxProjectIDPrefixLength || !projectIDPrefixPattern.MatchString(c.ProjectIDPrefix):
		return eris.Wrapf(ErrInvalidConfig,
			"project_id_prefix %q must start with a lowercase letter, use only [a-z0-9-] and be at most %d characters",
			c.ProjectIDPrefix, maxProjectIDPrefixLength)
	case c.TermsMaxRetries < 0, c.TermsRetryDelaySeconds < 0, c.KeySettleDelaySeconds < 0, c.BillingMenuMaxViews < 0:
		return eris.Wrap(ErrInvalidConfig, "retry counts and delays cannot be negative")
	case c.RecommendationsDir == "":
		return eris.Wrap(ErrInvalidConfig, "recommendations_dir cannot be empty")
	}
	for _, svc := range c.TargetServices {
		if svc == "" {
			return eris.Wrap(ErrInvalidConfig, "target_services cannot contain empty entries")
		}
	}
	return nil
}

func findConfigFile(configFile string) (string, error) {
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return "", eris.Wrapf(err, "config file %s", configFile)
		}
		return configFile, nil
	}
	if configFile = os.Getenv(ConfigFileEnvVariable); configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return "", eris.Wrapf(err, "config file %s from %s", configFile, ConfigFileEnvVariable)
		}
		return configFile, nil
	}

	currDir, err := os.Getwd()
	if err != nil {
		return "", eris.Wrap(err, "failed to get working directory")
	}
	for {
		candidate := filepath.Join(currDir, ConfigFilename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(currDir)
		if parent == currDir {
			return "", nil
		}
		currDir = parent
	}
}

func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return eris.Wrapf(err, "failed to open config file %s", path)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).DisallowUnknownFields().Decode(cfg); err != nil {
		return eris.Wrapf(err, "failed to parse config file %s", path)
	}
	return nil
}
