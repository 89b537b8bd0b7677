// pkg/deploy/deploy_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Temp filesystem
// PURPOSE: Test file action classification and application

package deploy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotup-sh/dotup/pkg/deploy"
	dotuperr "github.com/dotup-sh/dotup/pkg/errors"
)

type fakeRunner struct {
	commands []string
}

func (r *fakeRunner) Run(command string) (string, error) {
	r.commands = append(r.commands, command)
	return "", nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestEvaluate(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "bash_profile")
	writeFile(t, source, "profile content")

	t.Run("missing target means create", func(t *testing.T) {
		op, err := deploy.Evaluate(source, filepath.Join(dir, "absent"))
		require.NoError(t, err)
		assert.Equal(t, deploy.ActionCreate, op.Action)
	})

	t.Run("differing target means update", func(t *testing.T) {
		target := filepath.Join(dir, "stale")
		writeFile(t, target, "old content")

		op, err := deploy.Evaluate(source, target)
		require.NoError(t, err)
		assert.Equal(t, deploy.ActionUpdate, op.Action)
	})

	t.Run("identical target means none", func(t *testing.T) {
		target := filepath.Join(dir, "current")
		writeFile(t, target, "profile content")

		op, err := deploy.Evaluate(source, target)
		require.NoError(t, err)
		assert.Equal(t, deploy.ActionNone, op.Action)
	})
}

func TestEvaluateMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := deploy.Evaluate(filepath.Join(dir, "nope"), filepath.Join(dir, "target"))
	require.Error(t, err)
	assert.True(t, dotuperr.IsCode(err, dotuperr.ErrFileRead))
}

func TestApplyCreate(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src")
	writeFile(t, source, "hello")

	// Parent directories of the target are created on demand.
	target := filepath.Join(dir, "nested", "deep", "dst")
	op, err := deploy.Evaluate(source, target)
	require.NoError(t, err)

	runner := &fakeRunner{}
	deployer := deploy.NewDeployer(runner)
	require.NoError(t, deployer.Apply(op))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
	assert.Empty(t, runner.commands)
}

func TestApplyUpdate(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src")
	target := filepath.Join(dir, "dst")
	writeFile(t, source, "new")
	writeFile(t, target, "old")

	op, err := deploy.Evaluate(source, target)
	require.NoError(t, err)

	deployer := deploy.NewDeployer(&fakeRunner{})
	require.NoError(t, deployer.Apply(op))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestApplyNoneIsNoop(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src")
	target := filepath.Join(dir, "dst")
	writeFile(t, source, "same")
	writeFile(t, target, "same")

	op, err := deploy.Evaluate(source, target)
	require.NoError(t, err)
	require.Equal(t, deploy.ActionNone, op.Action)

	info, err := os.Stat(target)
	require.NoError(t, err)
	before := info.ModTime()

	deployer := deploy.NewDeployer(&fakeRunner{})
	require.NoError(t, deployer.Apply(op))

	info, err = os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, before, info.ModTime())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "none", deploy.ActionNone.String())
	assert.Equal(t, "create", deploy.ActionCreate.String())
	assert.Equal(t, "update", deploy.ActionUpdate.String())
}
