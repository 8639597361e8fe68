package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is the root structure of a fieldgen configuration file.
type File struct {
	// Version of the file format.
	Version string `yaml:"version" toml:"version"`
	// Package is the default import path for types that name none.
	Package string `yaml:"package,omitempty" toml:"package,omitempty"`
	// Output is the name of the file generated in each package.
	Output string `yaml:"output,omitempty" toml:"output,omitempty"`
	// Profile names a preset: legacy, transitional or modern.
	Profile string `yaml:"profile,omitempty" toml:"profile,omitempty"`
	// Names overrides the nested type name style of the profile.
	Names string `yaml:"names,omitempty" toml:"names,omitempty"`
	// Ceiling overrides the profile ceiling when positive.
	Ceiling int `yaml:"ceiling,omitempty" toml:"ceiling,omitempty"`
	// Capacity bounds every generated table.
	Capacity int `yaml:"capacity,omitempty" toml:"capacity,omitempty"`
	// Concurrency limits parallel table builds.
	Concurrency int `yaml:"concurrency,omitempty" toml:"concurrency,omitempty"`
	// Types lists the struct types to generate tables for.
	Types []TypeSpec `yaml:"types" toml:"types"`
}

// TypeSpec selects one struct type and the modes to generate.
type TypeSpec struct {
	Package string   `yaml:"package,omitempty" toml:"package,omitempty"`
	Name    string   `yaml:"name" toml:"name"`
	Modes   ModeList `yaml:"modes,omitempty" toml:"modes,omitempty"`
}

// ID returns the fully qualified type name.
func (ts TypeSpec) ID() string {
	if ts.Package == "" {
		return ts.Name
	}

	return ts.Package + "." + ts.Name
}

// ModeList is a list of traversal mode names.
// In YAML it may be written as a single string.
type ModeList []string

// UnmarshalYAML accepts either a single string or an array of strings.
func (m *ModeList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*m = ModeList{str}
		} else {
			*m = ModeList{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*m = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (m ModeList) MarshalYAML() (any, error) {
	if len(m) == 1 {
		return m[0], nil
	}

	return []string(m), nil
}
