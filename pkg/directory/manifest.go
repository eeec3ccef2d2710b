package directory

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest describes a contact directory: where it came from and how its
// data file is laid out.
type Manifest struct {
	ID           string           `yaml:"id" json:"id"`
	Version      string           `yaml:"version" json:"version"`
	Region       string           `yaml:"region" json:"region"`
	Source       string           `yaml:"source" json:"source"`
	SourceURL    string           `yaml:"source_url,omitempty" json:"source_url,omitempty"`
	License      string           `yaml:"license,omitempty" json:"license,omitempty"`
	DataFile     string           `yaml:"data_file" json:"data_file"`
	Format       FormatSpec       `yaml:"format" json:"-"`
	MetadataCols []MetadataColumn `yaml:"metadata_columns,omitempty" json:"-"`
}

// FormatSpec describes the CSV layout.
type FormatSpec struct {
	Delimiter     string   `yaml:"delimiter,omitempty"`
	Encoding      string   `yaml:"encoding,omitempty"`
	HasHeader     bool     `yaml:"has_header,omitempty"`
	NameColumn    string   `yaml:"name_column,omitempty"`
	NumberColumns []string `yaml:"number_columns,omitempty"`
	Normalize     string   `yaml:"normalize,omitempty"`
}

// MetadataColumn maps a logical name to a CSV column.
type MetadataColumn struct {
	Name   string `yaml:"name"`
	Column string `yaml:"column"`
}

// LoadManifest reads and parses a manifest.yaml file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.ID == "" {
		return nil, fmt.Errorf("manifest %s: missing id", path)
	}
	if m.DataFile == "" {
		m.DataFile = "data.csv"
	}
	return &m, nil
}

// WriteManifest writes m as dir/manifest.yaml.
func WriteManifest(dir string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, "manifest.yaml"), data, 0o644)
}
