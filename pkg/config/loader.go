package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML widget document from r, applies defaults for omitted
// fields, and validates the result.
func Load(r io.Reader) (Config, error) {
	if r == nil {
		return Config{}, errors.New("config: reader is required")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("config: read document: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal document: %w", err)
	}

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile loads a YAML widget document from disk.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Config{}, errors.New("config: path is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open document: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// LoadFS loads a YAML widget document from an fs.FS, allowing embedded
// configuration bundles.
func LoadFS(fsys fs.FS, path string) (Config, error) {
	if fsys == nil {
		return Config{}, errors.New("config: fs is required")
	}
	f, err := fsys.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open document: %w", err)
	}
	defer f.Close()
	return Load(f)
}
