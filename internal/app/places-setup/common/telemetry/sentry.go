package telemetry

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const sentryFlushTimeout = 5 * time.Second

var sentryInitialized bool

// SentryHook forwards warnings and errors logged through zerolog to Sentry.
type SentryHook struct{}

func (h SentryHook) Run(_ *zerolog.Event, level zerolog.Level, msg string) {
	if !sentryInitialized || !slices.Contains(h.Levels(), level) {
		return
	}
	if level == zerolog.WarnLevel {
		sentry.CaptureMessage(msg)
		return
	}
	sentry.CaptureException(errors.New(msg))
}

func (h SentryHook) Levels() []zerolog.Level {
	return []zerolog.Level{zerolog.WarnLevel, zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel}
}

// SentryInit initializes sentry. An empty DSN leaves it disabled.
func SentryInit(sentryDsn string, appVersion string) {
	if sentryDsn == "" {
		return
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              sentryDsn,
		TracesSampleRate: 1.0,
		AttachStacktrace: true,
		Release:          fmt.Sprintf("places-setup@%s", appVersion),
	})
	if err != nil {
		log.Err(err).Msg("Cannot initialize sentry")
		return
	}
	sentryInitialized = true
}

func SentryFlush() {
	if !sentryInitialized {
		return
	}
	if err := recover(); err != nil {
		sentry.CurrentHub().Recover(err)
	}
	sentry.Flush(sentryFlushTimeout)
	sentryInitialized = false
}
