package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"github.com/placeskit/places-setup/internal/app/places-setup/common/telemetry"
	"github.com/placeskit/places-setup/internal/pkg/logger"
	"github.com/placeskit/places-setup/internal/pkg/printer"
)

// These variables are overridden by ldflags during build.
// Example: go build -ldflags "-X main.AppVersion=1.0.0 -X main.PosthogAPIKey=<KEY> -X main.SentryDsn=<DSN>"
var (
	AppVersion    string
	PosthogAPIKey string
	SentryDsn     string
)

func init() {
	if AppVersion == "" {
		AppVersion = "dev"
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	telemetry.SentryInit(SentryDsn, AppVersion)
	defer telemetry.SentryFlush()

	log.Logger = log.Logger.Hook(telemetry.SentryHook{})

	telemetry.PosthogInit(PosthogAPIKey)
	defer telemetry.PosthogClose()

	if len(os.Args) > 1 && os.Args[1] == "post-installation" {
		telemetry.PosthogCaptureEvent(AppVersion, telemetry.PostInstallationEvent, nil)
		return 0
	}
	telemetry.PosthogCaptureEvent(AppVersion, telemetry.RunningEvent, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd(AppVersion, buildDependencies).ExecuteContext(ctx)
	if err != nil {
		logger.Errors(err)
		printer.Errorln(err.Error())
	}
	logger.PrintLogs()

	if err != nil {
		return 1
	}
	return 0
}
