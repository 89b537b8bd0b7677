// pkg/manifest/manifest_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test manifest parsing and validation rules

package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dotuperr "github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/manifest"
)

const validManifest = `
goenv:
  install:
    if_fail: goenv --version
    repo: https://example.com/goenv.repo
    install_from_repo: goenv
  files:
    bash_profile: ${HOME}/.bash_profile
    prompt.sh: ${HOME}/.dotup/prompt.sh

editor:
  files:
    vimrc: ${HOME}/.vimrc
`

func TestParse(t *testing.T) {
	m, err := manifest.Parse([]byte(validManifest))
	require.NoError(t, err)
	require.Len(t, m.Entries, 2)

	// Document order is preserved.
	assert.Equal(t, "goenv", m.Entries[0].Name)
	assert.Equal(t, "editor", m.Entries[1].Name)

	goenv := m.Entries[0]
	require.NotNil(t, goenv.Install)
	assert.Equal(t, "goenv --version", goenv.Install.IfFail)
	assert.Equal(t, "https://example.com/goenv.repo", goenv.Install.Repo)
	assert.Equal(t, "goenv", goenv.Install.Package())

	require.Len(t, goenv.Files, 2)
	assert.Equal(t, "bash_profile", goenv.Files[0].Source)
	assert.Equal(t, "${HOME}/.bash_profile", goenv.Files[0].Target)

	editor := m.Entries[1]
	assert.Nil(t, editor.Install)
	require.Len(t, editor.Files, 1)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing if_fail",
			yaml: "x:\n  install:\n    install_from_repo: pkg\n",
		},
		{
			name: "multiline if_fail",
			yaml: "x:\n  install:\n    if_fail: |\n      first\n      second\n    install_from_repo: pkg\n",
		},
		{
			name: "neither install source",
			yaml: "x:\n  install:\n    if_fail: which pkg\n",
		},
		{
			name: "both install sources",
			yaml: "x:\n  install:\n    if_fail: which pkg\n    install_from_repo: pkg\n    install_from_remote_file: https://e.com/p.rpm\n",
		},
		{
			name: "remote file is not an rpm",
			yaml: "x:\n  install:\n    if_fail: which pkg\n    install_from_remote_file: https://e.com/p.tar.gz\n",
		},
		{
			name: "empty entry",
			yaml: "x: {}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, dotuperr.IsCode(err, dotuperr.ErrManifestInvalid), "got: %v", err)
		})
	}
}

func TestParseRemoteFileInstall(t *testing.T) {
	m, err := manifest.Parse([]byte(`
tool:
  install:
    if_fail: tool --version
    install_from_remote_file: https://example.com/tool-1.0.rpm
`))
	require.NoError(t, err)
	require.Len(t, m.Entries, 1)
	assert.Equal(t, "https://example.com/tool-1.0.rpm", m.Entries[0].Install.Package())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dotup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validManifest), 0644))

	m, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Len(t, m.Entries, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := manifest.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, dotuperr.IsCode(err, dotuperr.ErrManifestLoad))
}

func TestParseEmptyDocument(t *testing.T) {
	m, err := manifest.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, m.Entries)
}
