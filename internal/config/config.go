// Package config loads the project manifest. A manifest is optional:
// droe.toml is preferred, droe.yaml accepted, and a project without
// either simply runs on command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/droe-lang/droe-sub001/internal/target"
)

const (
	TOMLManifest = "droe.toml"
	YAMLManifest = "droe.yaml"
)

// Manifest holds the project configuration.
type Manifest struct {
	Name  string `toml:"name" yaml:"name"`
	Build Build  `toml:"build" yaml:"build"`

	// Found and Path record where the manifest came from. Both stay
	// zero when no manifest file exists.
	Found bool   `toml:"-" yaml:"-"`
	Path  string `toml:"-" yaml:"-"`
}

// Build holds the compilation settings.
type Build struct {
	Target     string `toml:"target" yaml:"target"`
	Framework  string `toml:"framework" yaml:"framework"`
	SourceRoot string `toml:"source_root" yaml:"source_root"`
	Output     string `toml:"output" yaml:"output"`
	Strict     bool   `toml:"strict" yaml:"strict"`
}

// Load searches startDir and its ancestors for a manifest and decodes
// the first one found. TOML wins over YAML within the same directory.
// A missing manifest is not an error; the zero Manifest comes back
// with Found unset.
func Load(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", startDir, err)
	}
	for {
		for _, name := range []string{TOMLManifest, YAMLManifest} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return loadFile(path)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return &Manifest{}, nil
		}
		dir = parent
	}
}

// loadFile decodes one manifest file by extension.
func loadFile(path string) (*Manifest, error) {
	var m Manifest
	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &m); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	m.applyDefaults()
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	m.Found = true
	m.Path = path
	return &m, nil
}

func (m *Manifest) applyDefaults() {
	if m.Build.SourceRoot == "" {
		m.Build.SourceRoot = "src"
	}
	if m.Build.Output == "" {
		m.Build.Output = "build"
	}
}

// validate checks the target name when one is set. Whether a
// generator exists for the target/framework pair is a build-time
// question, not a manifest one.
func (m *Manifest) validate() error {
	if m.Build.Target == "" {
		return nil
	}
	_, err := target.Parse(m.Build.Target)
	return err
}
