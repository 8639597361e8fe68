package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFile() *File {
	f := &File{
		Package: "example.com/app/model",
		Types: []TypeSpec{
			{Name: "Order"},
			{Name: "Customer", Modes: ModeList{"shallow"}},
		},
	}
	applyDefaults(f)

	return f
}

func TestValidate_Valid(t *testing.T) {
	res := Validate(validFile())
	assert.False(t, res.HasErrors())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, CodeConfigIsNil, res.Errors[0].Code)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*File)
		code   string
	}{
		{"profile", func(f *File) { f.Profile = "ancient" }, CodeInvalidProfile},
		{"names", func(f *File) { f.Names = "short" }, CodeInvalidNames},
		{"ceiling", func(f *File) { f.Ceiling = -1 }, CodeInvalidCeiling},
		{"capacity", func(f *File) { f.Capacity = -1 }, CodeInvalidCapacity},
		{"output", func(f *File) { f.Output = "" }, CodeInvalidOutput},
		{"missing package", func(f *File) { f.Types = append(f.Types, TypeSpec{Name: "X", Modes: ModeList{"shallow"}}) }, CodeMissingPackage},
		{"unexported type", func(f *File) { f.Types[0].Name = "order" }, CodeInvalidTypeName},
		{"bad identifier", func(f *File) { f.Types[0].Name = "Or-der" }, CodeInvalidTypeName},
		{"mode", func(f *File) { f.Types[0].Modes = ModeList{"deep"} }, CodeInvalidMode},
		{"duplicate type", func(f *File) { f.Types = append(f.Types, f.Types[0]) }, CodeDuplicateType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFile()
			tt.mutate(f)

			res := Validate(f)
			require.True(t, res.HasErrors())
			require.Len(t, res.Errors, 1, res.Error())
			assert.Equal(t, tt.code, res.Errors[0].Code)
		})
	}
}

func TestValidate_Warnings(t *testing.T) {
	f := validFile()
	f.Types = nil

	res := Validate(f)
	assert.False(t, res.HasErrors())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, CodeNoTypes, res.Warnings[0].Code)

	f = validFile()
	f.Types[1].Modes = ModeList{"shallow", "shallow"}

	res = Validate(f)
	assert.False(t, res.HasErrors())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, CodeDuplicateMode, res.Warnings[0].Code)
}
