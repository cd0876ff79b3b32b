package telemetry

import (
	"os"
	"path/filepath"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/posthog/posthog-go"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

const (
	PostInstallationEvent = "Places Setup Installation"
	RunningEvent          = "Places Setup Running"
	CompletedEvent        = "Places Setup Completed"
	FailedEvent           = "Places Setup Failed"

	timestampFile = ".places-setup"
	machineIDApp  = "places-setup"
)

var (
	posthogClient      posthog.Client
	posthogInitialized bool
	lastLoggedTime     time.Time

	distinctID = func() (string, error) {
		return machineid.ProtectedID(machineIDApp)
	}
)

// PosthogInit creates the posthog client. An empty key leaves telemetry disabled.
func PosthogInit(posthogAPIKey string) {
	if posthogAPIKey == "" {
		return
	}
	posthogClient = posthog.New(posthogAPIKey)
	posthogInitialized = true

	lastTime, err := getLastLoggedTime()
	if err != nil {
		log.Err(err).Msg("Cannot get last logged time")
	}
	lastLoggedTime = lastTime

	if err := updateLastLoggedTime(time.Now()); err != nil {
		log.Err(err).Msg("Cannot update last logged time")
	}
}

// PosthogCaptureEvent enqueues event. The running event is sent at most once a day.
func PosthogCaptureEvent(appVersion, event string, properties map[string]interface{}) {
	if !posthogInitialized || !shouldCapture(lastLoggedTime, time.Now(), event) {
		return
	}

	machineID, err := distinctID()
	if err != nil {
		log.Err(err).Msg("Cannot get machine id")
		return
	}

	props := posthog.NewProperties().Set("context", appVersion)
	for k, v := range properties {
		props.Set(k, v)
	}

	err = posthogClient.Enqueue(posthog.Capture{
		DistinctId: machineID,
		Timestamp:  time.Now(),
		Event:      event,
		Properties: props,
	})
	if err != nil {
		log.Err(err).Msg("Cannot capture event")
	}
}

func PosthogClose() {
	if !posthogInitialized {
		return
	}
	if err := posthogClient.Close(); err != nil {
		log.Err(err).Msg("Cannot close posthog client")
	}
	posthogInitialized = false
}

func shouldCapture(last, now time.Time, event string) bool {
	return event != RunningEvent || !isSameDay(last, now)
}

func isSameDay(time1, time2 time.Time) bool {
	return time1.Year() == time2.Year() &&
		time1.Month() == time2.Month() &&
		time1.Day() == time2.Day()
}

func getTimestampFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", eris.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(homeDir, timestampFile), nil
}

// getLastLoggedTime returns the zero time when no timestamp was written yet.
func getLastLoggedTime() (time.Time, error) {
	filePath, err := getTimestampFilePath()
	if err != nil {
		return time.Time{}, err
	}

	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, eris.Wrap(err, "failed to read timestamp file")
	}

	timestamp, err := time.Parse(time.DateOnly, string(data))
	if err != nil {
		return time.Time{}, eris.Wrap(err, "failed to parse timestamp file")
	}
	return timestamp, nil
}

func updateLastLoggedTime(timestamp time.Time) error {
	filePath, err := getTimestampFilePath()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filePath, []byte(timestamp.Format(time.DateOnly)), 0o600); err != nil {
		return eris.Wrap(err, "failed to write timestamp file")
	}
	return nil
}
