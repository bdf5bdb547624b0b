package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest describes a project's larch.toml.
type Manifest struct {
	// Package is the [package] section.
	Package PackageSection `toml:"package"`
	// Build is the optional [build] section.
	Build BuildSection `toml:"build"`

	// Dir is the directory holding the manifest. Not read from TOML.
	Dir string `toml:"-"`
}

// PackageSection is the [package] section of larch.toml.
type PackageSection struct {
	Name string `toml:"name"`
	// Entry is the main source file, relative to the manifest directory.
	Entry string `toml:"entry"`
}

// BuildSection is the [build] section of larch.toml.
type BuildSection struct {
	// Out is the directory for generated Python files, relative to the
	// manifest directory. Defaults to "build".
	Out string `toml:"out"`
}

var (
	// ErrPackageSectionMissing indicates that [package] is missing.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates that [package].name is missing.
	ErrPackageNameMissing = errors.New("missing [package].name")
)

// LoadManifest parses a larch.toml file.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if m.Package.Name == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	if m.Package.Entry == "" {
		m.Package.Entry = "main.lr"
	}
	if m.Build.Out == "" {
		m.Build.Out = "build"
	}
	m.Dir = filepath.Dir(path)
	return &m, nil
}

// EntryPath returns the absolute path of the entry source file.
func (m *Manifest) EntryPath() string {
	return filepath.Join(m.Dir, m.Package.Entry)
}

// OutDir returns the absolute path of the build output directory.
func (m *Manifest) OutDir() string {
	return filepath.Join(m.Dir, m.Build.Out)
}
