package run_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dotuperr "github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/run"
)

func TestExecRunner(t *testing.T) {
	runner := run.ExecRunner{}

	output, err := runner.Run("echo hello world")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", output)
}

func TestExecRunnerFailure(t *testing.T) {
	runner := run.ExecRunner{}

	_, err := runner.Run("false")
	require.Error(t, err)
	assert.True(t, dotuperr.IsCode(err, dotuperr.ErrCommandRun))
}

func TestExecRunnerMissingBinary(t *testing.T) {
	runner := run.ExecRunner{}

	_, err := runner.Run("definitely-not-a-real-command-xyz")
	require.Error(t, err)
}

func TestExecRunnerEmptyCommand(t *testing.T) {
	runner := run.ExecRunner{}

	_, err := runner.Run("   ")
	require.Error(t, err)
	assert.True(t, dotuperr.IsCode(err, dotuperr.ErrInvalidInput))
}
