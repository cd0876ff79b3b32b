package logger

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	DefaultTimeFormat           = "15:04:05.000"
	DefaultCallerSkipFrameCount = 3 // set to 3 because logger wrapped in logger.go

	NoColor   = true
	UseCaller = false // for developer, if you want to expose line of code of caller
	flagDebug = "debug"
)

//nolint:gochecknoglobals // log buffer is process wide
var (
	logBuffer bytes.Buffer

	// DebugMode flag for determining debug mode
	DebugMode = false
)

func init() {
	zerolog.TimeFieldFormat = DefaultTimeFormat
	zerolog.CallerSkipFrameCount = DefaultCallerSkipFrameCount

	consoleWriter := zerolog.ConsoleWriter{
		Out:        &logBuffer,
		NoColor:    NoColor,
		TimeFormat: DefaultTimeFormat,
	}
	lgr := zerolog.New(zerolog.MultiLevelWriter(consoleWriter))

	if UseCaller {
		lgr = lgr.With().Caller().Logger()
	}

	log.Logger = lgr
}

// PrintLogs prints the stacked log when debug mode is on.
func PrintLogs() {
	FlushTo(nil)
}

// FlushTo writes the stacked log to w (stdout when nil) if debug mode is on.
func FlushTo(w io.Writer) {
	if !DebugMode {
		return
	}
	logs := logBuffer.String()
	if len(logs) == 0 {
		return
	}
	if w == nil {
		fmt.Println("\n----- Log -----")
		fmt.Println(logs)
		return
	}
	fmt.Fprintln(w, "\n----- Log -----")
	fmt.Fprintln(w, logs)
}

// SetDebugMode reads the --debug flag from the command.
func SetDebugMode(cmd *cobra.Command) {
	val, err := cmd.Flags().GetBool(flagDebug)
	if err == nil {
		DebugMode = val
	}
}

// AddLogFlag sets flag --debug
func AddLogFlag(cmd ...*cobra.Command) {
	for _, c := range cmd {
		c.Flags().Bool(flagDebug, false, "Run in debug mode")
	}
}
