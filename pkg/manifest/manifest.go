// Package manifest parses and validates the provisioning manifest
// (dotup.yaml): named entries that declare a package installation and/or a
// set of managed files.
package manifest

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dotup-sh/dotup/pkg/errors"
)

// Manifest is the parsed provisioning manifest. Entries keep document order
// so plans and applies run in the order the user wrote.
type Manifest struct {
	Entries []Entry
}

// Entry is one named unit of provisioning
type Entry struct {
	Name    string
	Install *InstallSpec
	Files   []FileMapping
}

// InstallSpec declares how a package is installed. The package is only
// installed when the IfFail gate command exits non-zero.
type InstallSpec struct {
	IfFail                string `yaml:"if_fail"`
	Repo                  string `yaml:"repo"`
	InstallFromRepo       string `yaml:"install_from_repo"`
	InstallFromRemoteFile string `yaml:"install_from_remote_file"`
}

// FileMapping maps a file in the dotfiles checkout to its target path.
// Target may contain ${VAR} placeholders, expanded at plan time.
type FileMapping struct {
	Source string
	Target string
}

// Package returns the name shown to the user for this installation
func (s *InstallSpec) Package() string {
	if s.InstallFromRepo != "" {
		return s.InstallFromRepo
	}
	return s.InstallFromRemoteFile
}

// Validate checks the structural rules of an install spec
func (s *InstallSpec) Validate(entry string) error {
	if s.IfFail == "" {
		return errors.Newf(errors.ErrManifestInvalid, "entry %q: 'if_fail' is required", entry)
	}
	if strings.Contains(s.IfFail, "\n") {
		return errors.Newf(errors.ErrManifestInvalid, "entry %q: 'if_fail' does not support multiline commands", entry)
	}
	if (s.InstallFromRepo == "") == (s.InstallFromRemoteFile == "") {
		return errors.Newf(errors.ErrManifestInvalid,
			"entry %q: either 'install_from_repo' or 'install_from_remote_file' must be defined", entry)
	}
	if s.InstallFromRemoteFile != "" && !strings.HasSuffix(s.InstallFromRemoteFile, ".rpm") {
		return errors.Newf(errors.ErrManifestInvalid, "entry %q: remote file must be an RPM file", entry)
	}
	return nil
}

// Load reads and parses the manifest at path
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "failed to read manifest %s", path)
	}
	return Parse(data)
}

// entrySpec is the YAML shape of a single entry. Files is kept as a node so
// the mapping order survives decoding.
type entrySpec struct {
	Install *InstallSpec `yaml:"install"`
	Files   yaml.Node    `yaml:"files"`
}

// Parse parses manifest bytes, preserving entry order
func Parse(data []byte) (*Manifest, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestLoad, "failed to parse manifest YAML")
	}
	if len(root.Content) == 0 {
		return &Manifest{}, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrManifestInvalid, "manifest must be a mapping of entry names")
	}

	m := &Manifest{}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		name := doc.Content[i].Value

		var spec entrySpec
		if err := doc.Content[i+1].Decode(&spec); err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestInvalid, "entry %q: invalid structure", name)
		}

		entry := Entry{Name: name, Install: spec.Install}
		if entry.Install != nil {
			if err := entry.Install.Validate(name); err != nil {
				return nil, err
			}
		}

		files, err := decodeFiles(name, &spec.Files)
		if err != nil {
			return nil, err
		}
		entry.Files = files

		if entry.Install == nil && len(entry.Files) == 0 {
			return nil, errors.Newf(errors.ErrManifestInvalid,
				"entry %q: must declare 'install' and/or 'files'", name)
		}

		m.Entries = append(m.Entries, entry)
	}

	return m, nil
}

// decodeFiles turns the files mapping node into ordered FileMappings
func decodeFiles(entry string, node *yaml.Node) ([]FileMapping, error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrManifestInvalid, "entry %q: 'files' must be a mapping", entry)
	}

	var files []FileMapping
	for i := 0; i+1 < len(node.Content); i += 2 {
		source := node.Content[i].Value
		target := node.Content[i+1].Value
		if source == "" || target == "" {
			return nil, errors.Newf(errors.ErrManifestInvalid, "entry %q: file mapping needs source and target", entry)
		}
		files = append(files, FileMapping{Source: source, Target: target})
	}
	return files, nil
}
