package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"struct-reflection/reflection"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Default values applied to omitted settings.
const (
	DefaultVersion     = "1"
	DefaultOutput      = "fields_gen.go"
	DefaultProfile     = "modern"
	DefaultConcurrency = 4
)

// ParseFormat normalizes a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config format: %s", s)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// LoadFile loads and parses a configuration file from the given path.
func LoadFile(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data, format)
}

// Parse decodes data in the given format and applies defaults.
func Parse(data []byte, format Format) (*File, error) {
	var f File

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", format, err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = DefaultVersion
	}

	if f.Output == "" {
		f.Output = DefaultOutput
	}

	if f.Profile == "" {
		f.Profile = DefaultProfile
	}

	if f.Capacity == 0 {
		f.Capacity = reflection.DefaultCapacity
	}

	if f.Concurrency == 0 {
		f.Concurrency = DefaultConcurrency
	}

	for i := range f.Types {
		ts := &f.Types[i]
		if ts.Package == "" {
			ts.Package = f.Package
		}

		if len(ts.Modes) == 0 {
			ts.Modes = ModeList{reflection.Shallow.String(), reflection.Exhaustive.String()}
		}
	}
}

// Marshal serializes a File in the given format.
func Marshal(f *File, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(f)
	case FormatTOML:
		return toml.Marshal(*f)
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}
}

// WriteFile writes f to path, encoded by the path's extension.
func WriteFile(f *File, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Marshal(f, format)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// Template returns a starter configuration for pkgPath.
func Template(pkgPath string) *File {
	f := &File{
		Package: pkgPath,
		Types: []TypeSpec{
			{Name: "MyStruct"},
		},
	}
	applyDefaults(f)

	return f
}

// ResolveProfile returns the reflection profile described by f.
func (f *File) ResolveProfile() (reflection.Profile, error) {
	var profile reflection.Profile

	switch f.Profile {
	case "legacy":
		profile = reflection.ProfileLegacy
	case "transitional":
		profile = reflection.ProfileTransitional
	case "modern", "":
		profile = reflection.ProfileModern
	default:
		return reflection.Profile{}, fmt.Errorf("unknown profile %q", f.Profile)
	}

	if f.Names != "" {
		style, err := reflection.ParseNameStyle(f.Names)
		if err != nil {
			return reflection.Profile{}, err
		}

		profile.NestedTypeNames = style
	}

	if f.Ceiling > 0 {
		profile.Ceiling = f.Ceiling
	}

	return profile, nil
}

// ParsedModes parses the mode names of ts.
func (ts TypeSpec) ParsedModes() ([]reflection.Mode, error) {
	modes := make([]reflection.Mode, 0, len(ts.Modes))
	for _, s := range ts.Modes {
		m, err := reflection.ParseMode(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ts.ID(), err)
		}

		if !slices.Contains(modes, m) {
			modes = append(modes, m)
		}
	}

	return modes, nil
}
