package help

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/helpmap/pkg/constants"
	"github.com/agentstation/helpmap/pkg/errors"
)

// Manifest describes an API's documentation set: the fields rendered into
// the discovery document and the ordered list of topic files.
type Manifest struct {
	Name           string      `yaml:"name" json:"name"`
	Description    string      `yaml:"description" json:"description"`
	QuickReference []Endpoint  `yaml:"quick_reference,omitempty" json:"quick_reference,omitempty"`
	GettingStarted string      `yaml:"getting_started,omitempty" json:"getting_started,omitempty"`
	Topics         []TopicSpec `yaml:"topics" json:"topics"`
}

// Endpoint is a quick-reference line in the discovery document.
type Endpoint struct {
	Method  string `yaml:"method" json:"method"`
	Path    string `yaml:"path" json:"path"`
	Summary string `yaml:"summary" json:"summary"`
}

// TopicSpec declares a topic and the markdown file holding its content.
type TopicSpec struct {
	Name    string `yaml:"name" json:"name"`
	File    string `yaml:"file" json:"file"`
	Summary string `yaml:"summary" json:"summary"`
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapParse("yaml", constants.ManifestFile, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest for missing fields and duplicate topics.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return errors.NewValidationError("name", m.Name, "cannot be empty")
	}

	seen := make(map[string]bool, len(m.Topics))
	for i, t := range m.Topics {
		field := fmt.Sprintf("topics[%d]", i)
		if err := ValidateTopic(t.Name); err != nil {
			return errors.NewValidationError(field+".name", t.Name, err.Error())
		}
		if t.Name == RootTopic {
			return errors.NewValidationError(field+".name", t.Name, "root topic is generated from the manifest")
		}
		if seen[t.Name] {
			return errors.NewAlreadyExistsError("topic", t.Name)
		}
		seen[t.Name] = true
		if t.File == "" {
			return errors.NewValidationError(field+".file", t.File, "cannot be empty")
		}
	}
	return nil
}

// Load reads the manifest and every topic file from fsys and builds a
// registry whose first entry is the rendered discovery document.
func Load(fsys fs.FS) (*Registry, error) {
	data, err := fs.ReadFile(fsys, constants.ManifestFile)
	if err != nil {
		return nil, errors.WrapIO("read", constants.ManifestFile, err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	return m.Build(fsys)
}

// Build reads the manifest's topic files from fsys and assembles the registry.
func (m *Manifest) Build(fsys fs.FS) (*Registry, error) {
	entries := make([]Entry, 0, len(m.Topics)+1)

	root, err := RenderDiscovery(m)
	if err != nil {
		return nil, errors.WrapResource("render", "topic", RootTopic, err)
	}
	entries = append(entries, Entry{
		Topic:   RootTopic,
		Summary: m.Description,
		Content: root,
	})

	for _, t := range m.Topics {
		name := path.Clean(t.File)
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.WrapIO("read", name, err)
		}
		if len(content) == 0 {
			return nil, errors.NewValidationError("file", name, "topic document is empty")
		}
		entries = append(entries, Entry{
			Topic:   t.Name,
			Summary: t.Summary,
			Content: string(content),
		})
	}

	return NewRegistry(entries...)
}
