package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/placeskit/places-setup/internal/app/places-setup/clients/browser"
	"github.com/placeskit/places-setup/internal/app/places-setup/clients/gcloud"
	"github.com/placeskit/places-setup/internal/app/places-setup/clients/keystore"
	"github.com/placeskit/places-setup/internal/app/places-setup/commands/root"
	"github.com/placeskit/places-setup/internal/app/places-setup/commands/setup"
	"github.com/placeskit/places-setup/internal/app/places-setup/common/telemetry"
	"github.com/placeskit/places-setup/internal/app/places-setup/interfaces"
	"github.com/placeskit/places-setup/internal/app/places-setup/models"
	"github.com/placeskit/places-setup/internal/app/places-setup/services/config"
	"github.com/placeskit/places-setup/internal/app/places-setup/services/input"
	"github.com/placeskit/places-setup/internal/pkg/logger"
	"github.com/placeskit/places-setup/internal/pkg/tea/style"
)

const flagConfig = "config"

// Dependencies are the handlers behind the commands.
type Dependencies struct {
	SetupHandler interfaces.SetupHandler
	RootHandler  interfaces.RootHandler
}

// DependencyFactory builds the handlers once the config file is known.
type DependencyFactory func(appVersion, configFile string) (*Dependencies, error)

//nolint:gochecknoglobals // swapped in tests
var captureEvent = telemetry.PosthogCaptureEvent

func buildDependencies(appVersion, configFile string) (*Dependencies, error) {
	configService, err := config.NewService(configFile)
	if err != nil {
		return nil, err
	}

	gcloudClient := gcloud.NewClient()
	keystoreClient := keystore.NewClient()

	return &Dependencies{
		SetupHandler: setup.NewHandler(
			gcloudClient,
			browser.NewClient(),
			input.NewService(),
			keystoreClient,
			configService,
		),
		RootHandler: root.NewHandler(appVersion, gcloudClient, keystoreClient, configService),
	}, nil
}

func newRootCmd(appVersion string, factory DependencyFactory) *cobra.Command {
	opts := &models.SetupOptions{}
	var configFile string

	deps := func(cmd *cobra.Command) (*Dependencies, error) {
		logger.SetDebugMode(cmd)
		return factory(appVersion, configFile)
	}

	rootCmd := &cobra.Command{
		Use:           "places-setup",
		Short:         "Provision a Google Cloud project and a Places API key",
		Long:          style.CLIHeader("Places Setup", "Provision a Google Cloud project and a Places API key with gcloud"),
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := deps(cmd)
			if err != nil {
				return err
			}
			opts.Debug = logger.DebugMode

			result := d.SetupHandler.Run(cmd.Context(), opts)
			props := map[string]interface{}{"mock": result.IsMock}
			if !result.Success {
				captureEvent(appVersion, telemetry.FailedEvent, props)
				return eris.New(result.Error)
			}
			captureEvent(appVersion, telemetry.CompletedEvent, props)
			return nil
		},
	}
	rootCmd.SetVersionTemplate("places-setup version {{.Version}}\n")

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.SkipAuth, "skip-auth", false, "Skip gcloud authentication (use the active account)")
	flags.StringVar(&opts.ProjectID, "project-id", "", "Google Cloud project ID to create (must be globally unique)")
	flags.StringVar(&opts.ProjectName, "project-name", "", "Display name of the project")
	flags.BoolVarP(&opts.AutoConfirm, "yes", "y", true, "Answer prompts automatically; use --yes=false for interactive mode")
	flags.BoolVar(&opts.NoBilling, "no-billing", false, "Skip billing and issue a placeholder API key")
	flags.BoolVar(&opts.MockBilling, "mock-billing", false, "Use mock mode and issue a placeholder API key")
	flags.BoolVar(&opts.CopyKey, "copy-key", false, "Copy the API key to the clipboard")
	flags.BoolVar(&opts.SaveKey, "save-key", false, "Save the API key in the system keyring")
	rootCmd.PersistentFlags().StringVar(&configFile, flagConfig, "", "Path to a places-setup.toml config file")
	logger.AddLogFlag(rootCmd)

	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that gcloud and its installer prerequisites are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := deps(cmd)
			if err != nil {
				return err
			}
			return d.RootHandler.Doctor(cmd.Context())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Display the places-setup version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := deps(cmd)
			if err != nil {
				return err
			}
			return d.RootHandler.Version()
		},
	}

	var keyProjectID string
	keyCmd := &cobra.Command{
		Use:   "key",
		Short: "Print an API key saved with --save-key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := deps(cmd)
			if err != nil {
				return err
			}
			return d.RootHandler.ShowKey(keyProjectID)
		},
	}
	keyCmd.Flags().StringVar(&keyProjectID, "project-id", "", "Project the key was saved for")
	_ = keyCmd.MarkFlagRequired("project-id")

	logger.AddLogFlag(doctorCmd, keyCmd)
	rootCmd.AddCommand(doctorCmd, versionCmd, keyCmd)

	return rootCmd
}
