package gcloud

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/magefile/mage/sh"
	"github.com/rotisserie/eris"

	"github.com/placeskit/places-setup/internal/app/places-setup/models"
	"github.com/placeskit/places-setup/internal/pkg/logger"
	"github.com/placeskit/places-setup/internal/pkg/printer"
	"github.com/placeskit/places-setup/internal/pkg/tea/component/program"
)

//nolint:gochecknoglobals // swapped in tests
var runProgram = program.RunProgram

// Run executes command, showing status beside a spinner when it is not empty.
// A Ctrl-C on the spinner turns the result into a failure.
func (c *Client) Run(ctx context.Context, status, command string) models.CommandResult {
	if status == "" {
		return c.exec(ctx, command)
	}

	var result models.CommandResult
	err := runProgram(ctx, status, func(ctx context.Context) error {
		result = c.exec(ctx, command)
		return nil
	})
	if eris.Is(err, program.ErrInterrupted) {
		logger.Warnf("%q interrupted", command)
		printer.Warnln(strings.TrimSuffix(status, "...") + " interrupted")
		return failure(err.Error())
	}
	if err != nil {
		logger.Warnf("progress indicator for %q failed: %v", command, err)
	}

	if result.Success {
		printer.Successln(status)
	} else {
		printer.Errorln(strings.TrimSuffix(status, "...") + " failed")
	}
	return result
}

func (c *Client) exec(ctx context.Context, command string) models.CommandResult {
	if err := ctx.Err(); err != nil {
		return failure(fmt.Sprintf("command %q not started: %v", command, err))
	}

	argv, err := shlex.Split(command)
	if err != nil {
		return failure(fmt.Sprintf("invalid command %q: %v", command, err))
	}
	if len(argv) == 0 {
		return failure("empty command")
	}

	logger.Debugf("Executing: %s", command)

	var outBuff, errBuff bytes.Buffer
	ran, err := sh.Exec(c.Env, &outBuff, &errBuff, argv[0], argv[1:]...)
	if err != nil {
		output := strings.TrimSpace(errBuff.String())
		if output == "" {
			output = err.Error()
		}
		logger.DebugWithFields("command failed", map[string]interface{}{
			"command": command,
			"ran":     ran,
			"exit":    sh.ExitStatus(err),
		})
		return failure(output)
	}

	return models.CommandResult{Success: true, Output: outBuff.String()}
}

func failure(output string) models.CommandResult {
	return models.CommandResult{Success: false, Output: output}
}
