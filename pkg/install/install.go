// Package install decides whether a package is needed and installs it, either
// from a repository or from a downloaded package file.
package install

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/dotup-sh/dotup/pkg/config"
	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/logging"
	"github.com/dotup-sh/dotup/pkg/manifest"
	"github.com/dotup-sh/dotup/pkg/run"
)

// Step is one package installation derived from a manifest entry
type Step struct {
	Entry string
	Spec  manifest.InstallSpec
}

// Needed runs the gate command; the package needs installing when the gate
// exits non-zero.
func (s Step) Needed(runner run.Runner) bool {
	_, err := runner.Run(s.Spec.IfFail)
	return err != nil
}

// Installer performs package installations
type Installer struct {
	runner      run.Runner
	client      *http.Client
	settings    config.PackagerSettings
	downloadDir string
	logger      zerolog.Logger
}

// NewInstaller returns an Installer. client may be nil, in which case the
// default HTTP client is used.
func NewInstaller(runner run.Runner, client *http.Client, settings config.PackagerSettings) *Installer {
	if client == nil {
		client = http.DefaultClient
	}
	downloadDir := settings.DownloadDir
	if downloadDir == "" {
		downloadDir = os.TempDir()
	}
	return &Installer{
		runner:      runner,
		client:      client,
		settings:    settings,
		downloadDir: downloadDir,
		logger:      logging.GetLogger("install"),
	}
}

// Install performs the step: optional repository registration, then package
// installation from the repository or from a downloaded file.
func (i *Installer) Install(s Step) error {
	if s.Spec.InstallFromRepo != "" {
		return i.installFromRepo(s)
	}
	return i.installFromRemoteFile(s)
}

func (i *Installer) installFromRepo(s Step) error {
	if s.Spec.Repo != "" {
		i.logger.Info().Str("entry", s.Entry).Str("repo", s.Spec.Repo).Msg("Adding repository")
		if output, err := i.runner.Run(i.settings.AddRepoCommand + " " + s.Spec.Repo); err != nil {
			return errors.Wrapf(err, errors.ErrRepoAdd, "failed to add repo %s: %s", s.Spec.Repo, output)
		}
	}

	i.logger.Info().Str("entry", s.Entry).Str("package", s.Spec.InstallFromRepo).Msg("Installing package")
	if output, err := i.runner.Run(i.settings.InstallCommand + " " + s.Spec.InstallFromRepo); err != nil {
		return errors.Wrapf(err, errors.ErrPackageInstall, "failed to install %s: %s", s.Spec.InstallFromRepo, output)
	}
	return nil
}

func (i *Installer) installFromRemoteFile(s Step) error {
	i.logger.Info().Str("entry", s.Entry).Str("url", s.Spec.InstallFromRemoteFile).Msg("Downloading package file")
	localPath, err := i.download(s.Spec.InstallFromRemoteFile)
	if err != nil {
		return err
	}

	i.logger.Info().Str("entry", s.Entry).Str("file", localPath).Msg("Installing package from file")
	if output, err := i.runner.Run(i.settings.InstallCommand + " " + localPath); err != nil {
		return errors.Wrapf(err, errors.ErrPackageInstall, "failed to install %s: %s", localPath, output)
	}
	return nil
}

// download fetches rawURL into the download directory and returns the local path
func (i *Installer) download(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDownload, "invalid download URL %s", rawURL)
	}

	resp, err := i.client.Get(rawURL)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDownload, "failed to download %s", rawURL)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf(errors.ErrDownload, "failed to download %s: status %d", rawURL, resp.StatusCode)
	}

	localPath := filepath.Join(i.downloadDir, path.Base(parsed.Path))
	out, err := os.Create(localPath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileCreate, "failed to create %s", localPath)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", localPath)
	}
	return localPath, nil
}
