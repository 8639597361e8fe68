package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"struct-reflection/reflection"
)

func TestParse_YAML(t *testing.T) {
	yaml := `
version: "1"
package: example.com/app/model
profile: legacy
capacity: 32
types:
  - name: Order
    modes: [shallow, exhaustive]
  - name: Customer
    modes: shallow
  - package: example.com/app/other
    name: Invoice
`

	f, err := Parse([]byte(yaml), FormatYAML)
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "legacy", f.Profile)
	assert.Equal(t, 32, f.Capacity)
	assert.Equal(t, DefaultOutput, f.Output)
	assert.Equal(t, DefaultConcurrency, f.Concurrency)

	require.Len(t, f.Types, 3)
	assert.Equal(t, "example.com/app/model.Order", f.Types[0].ID())
	assert.Equal(t, ModeList{"shallow", "exhaustive"}, f.Types[0].Modes)

	// Single string shorthand
	assert.Equal(t, ModeList{"shallow"}, f.Types[1].Modes)

	// Explicit package wins, omitted modes default to both
	assert.Equal(t, "example.com/app/other.Invoice", f.Types[2].ID())
	assert.Equal(t, ModeList{"shallow", "exhaustive"}, f.Types[2].Modes)
}

func TestParse_TOML(t *testing.T) {
	data := `
version = "1"
package = "example.com/app/model"
names = "qualified"
ceiling = 50

[[types]]
name = "Order"
modes = ["exhaustive"]

[[types]]
name = "Customer"
`

	f, err := Parse([]byte(data), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, DefaultProfile, f.Profile)
	assert.Equal(t, "qualified", f.Names)
	assert.Equal(t, 50, f.Ceiling)
	assert.Equal(t, reflection.DefaultCapacity, f.Capacity)

	require.Len(t, f.Types, 2)
	assert.Equal(t, ModeList{"exhaustive"}, f.Types[0].Modes)
	assert.Equal(t, "example.com/app/model", f.Types[1].Package)
	assert.Len(t, f.Types[1].Modes, 2)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("types: [unclosed"), FormatYAML)
	require.Error(t, err)

	_, err = Parse([]byte("types = ["), FormatTOML)
	require.Error(t, err)

	_, err = Parse([]byte("{}"), Format("json"))
	require.Error(t, err)

	_, err = Parse([]byte("types:\n  - name: A\n    modes: {a: b}\n"), FormatYAML)
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{"YML", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"json", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveProfile(t *testing.T) {
	tests := []struct {
		name    string
		file    File
		want    reflection.Profile
		wantErr bool
	}{
		{name: "default", file: File{}, want: reflection.ProfileModern},
		{name: "legacy", file: File{Profile: "legacy"}, want: reflection.ProfileLegacy},
		{name: "transitional", file: File{Profile: "transitional"}, want: reflection.ProfileTransitional},
		{
			name: "overrides",
			file: File{Profile: "modern", Names: "qualified", Ceiling: 10},
			want: reflection.Profile{Ceiling: 10, NestedTypeNames: reflection.NameQualified},
		},
		{name: "unknown profile", file: File{Profile: "ancient"}, wantErr: true},
		{name: "unknown names", file: File{Names: "short"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.file.ResolveProfile()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeSpec_ParsedModes(t *testing.T) {
	ts := TypeSpec{Package: "p", Name: "T", Modes: ModeList{"exhaustive", "shallow", "exhaustive"}}

	modes, err := ts.ParsedModes()
	require.NoError(t, err)
	assert.Equal(t, []reflection.Mode{reflection.Exhaustive, reflection.Shallow}, modes)

	ts.Modes = ModeList{"deep"}
	_, err = ts.ParsedModes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "p.T")
}

func TestWriteFile_RoundTrip(t *testing.T) {
	for _, ext := range []string{"yaml", "toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "fieldgen."+ext)

			want := Template("example.com/app/model")
			require.NoError(t, WriteFile(want, path))

			got, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(dir, "fieldgen.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	_, err = LoadFile(path)
	require.Error(t, err)
}

func TestModeList_MarshalYAML(t *testing.T) {
	v, err := ModeList{"shallow"}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "shallow", v)

	v, err = ModeList{"shallow", "exhaustive"}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, []string{"shallow", "exhaustive"}, v)
}
