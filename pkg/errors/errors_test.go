package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotup-sh/dotup/pkg/errors"
)

func TestNewAndError(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "thing missing")
	assert.Equal(t, "[NOT_FOUND] thing missing", err.Error())
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrManifestInvalid, "entry %q is broken", "goenv")
	assert.Contains(t, err.Error(), `entry "goenv" is broken`)
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := errors.Wrap(cause, errors.ErrFileWrite, "failed to write")

	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	var err error = errors.Wrap(nil, errors.ErrFileWrite, "whatever")
	// Typed nil must not escape as a non-nil error value.
	require.Nil(t, err.(*errors.DotupError))
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.New(errors.ErrDownload, "download failed")
	target := errors.New(errors.ErrDownload, "different message")

	assert.True(t, stderrors.Is(err, target))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrFileWrite, "x")))
}

func TestIsCode(t *testing.T) {
	inner := errors.New(errors.ErrCommandRun, "exit status 1")
	outer := errors.Wrap(inner, errors.ErrPackageInstall, "failed to install jq")

	assert.True(t, errors.IsCode(outer, errors.ErrPackageInstall))
	assert.True(t, errors.IsCode(outer, errors.ErrCommandRun))
	assert.False(t, errors.IsCode(outer, errors.ErrDownload))
	assert.False(t, errors.IsCode(fmt.Errorf("plain"), errors.ErrCommandRun))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, errors.ErrDownload, errors.CodeOf(errors.New(errors.ErrDownload, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.CodeOf(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrConfigLoad, "bad config").WithDetail("path", "/etc/dotup.toml")
	assert.Equal(t, "/etc/dotup.toml", err.Details["path"])
}
