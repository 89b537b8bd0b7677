// Package deploy evaluates and applies managed file deployments: a source
// file from the dotfiles checkout is created at or updated to its target path
// when the target is missing or its content differs.
package deploy

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/logging"
	"github.com/dotup-sh/dotup/pkg/run"
)

// Action classifies what a file deployment will do
type Action int

const (
	// ActionNone means the target already matches the source
	ActionNone Action = iota
	// ActionCreate means the target does not exist yet
	ActionCreate
	// ActionUpdate means the target exists with different content
	ActionUpdate
)

// String returns the human-readable action name
func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	default:
		return "none"
	}
}

// FileOp is one evaluated file deployment
type FileOp struct {
	Source  string
	Target  string
	Action  Action
	content []byte
}

// Evaluate reads the source file and classifies the deployment against the
// current state of the target. The target path must already be expanded.
func Evaluate(source, target string) (*FileOp, error) {
	content, err := os.ReadFile(source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read source file %s", source)
	}

	op := &FileOp{Source: source, Target: target, content: content}

	existing, err := os.ReadFile(target)
	switch {
	case err == nil:
		if bytes.Equal(existing, content) {
			op.Action = ActionNone
		} else {
			op.Action = ActionUpdate
		}
	case os.IsNotExist(err):
		op.Action = ActionCreate
	default:
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read target file %s", target)
	}

	return op, nil
}

// Deployer applies file operations, falling back to sudo for targets the
// current user cannot write.
type Deployer struct {
	runner run.Runner
	logger zerolog.Logger
}

// NewDeployer returns a Deployer using the given runner for the sudo fallback
func NewDeployer(runner run.Runner) *Deployer {
	return &Deployer{
		runner: runner,
		logger: logging.GetLogger("deploy"),
	}
}

// Apply executes the operation. ActionNone is a no-op.
func (d *Deployer) Apply(op *FileOp) error {
	if op.Action == ActionNone {
		return nil
	}

	d.logger.Info().
		Str("target", op.Target).
		Str("action", op.Action.String()).
		Msg("Writing file")

	err := d.write(op)
	if err == nil {
		return nil
	}
	if !isPermission(err) {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", op.Target)
	}

	// Privileged target: re-run the copy through sudo.
	d.logger.Debug().Str("target", op.Target).Msg("Permission denied, retrying with sudo")
	if output, err := d.runner.Run("sudo mkdir -p " + filepath.Dir(op.Target)); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s: %s", filepath.Dir(op.Target), output)
	}
	if output, err := d.runner.Run("sudo cp " + op.Source + " " + op.Target); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to copy to %s: %s", op.Target, output)
	}
	return nil
}

func (d *Deployer) write(op *FileOp) error {
	if op.Action == ActionCreate {
		if err := os.MkdirAll(filepath.Dir(op.Target), 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(op.Target, op.content, 0644)
}

func isPermission(err error) bool {
	return stderrors.Is(err, fs.ErrPermission)
}
