// Package run wraps external command execution behind a small interface so
// provisioning logic can be tested without touching the host.
package run

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/logging"
)

// Runner executes a command line and returns its output. A non-zero exit
// status is returned as an error alongside the command's stderr output.
type Runner interface {
	Run(command string) (string, error)
}

// ExecRunner runs commands on the host via os/exec. Command lines are split
// on whitespace; the manifest format does not support quoting.
type ExecRunner struct{}

// Run implements Runner
func (ExecRunner) Run(command string) (string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", errors.New(errors.ErrInvalidInput, "empty command")
	}

	logger := logging.GetLogger("run")
	logger.Debug().Str("command", command).Msg("Executing command")

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stderr.String(), errors.Wrapf(err, errors.ErrCommandRun, "command failed: %s", command)
	}
	return stdout.String(), nil
}
