package config

import (
	"fmt"
	"go/token"

	"struct-reflection/internal/diagnostic"
	"struct-reflection/reflection"
)

// Validation codes.
const (
	CodeConfigIsNil     = "config_is_nil"
	CodeInvalidProfile  = "invalid_profile"
	CodeInvalidNames    = "invalid_names"
	CodeInvalidCeiling  = "invalid_ceiling"
	CodeInvalidCapacity = "invalid_capacity"
	CodeInvalidOutput   = "invalid_output"
	CodeNoTypes         = "no_types"
	CodeMissingPackage  = "missing_package"
	CodeInvalidTypeName = "invalid_type_name"
	CodeInvalidMode     = "invalid_mode"
	CodeDuplicateType   = "duplicate_type"
	CodeDuplicateMode   = "duplicate_mode"
)

// Validate checks a loaded configuration. It does not load any packages;
// missing types are reported later by the generator.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(CodeConfigIsNil, "config file is nil", "", "")
		return res
	}

	if _, err := f.ResolveProfile(); err != nil {
		code := CodeInvalidProfile
		if f.Names != "" {
			if _, nerr := reflection.ParseNameStyle(f.Names); nerr != nil {
				code = CodeInvalidNames
			}
		}

		res.AddError(code, err.Error(), "", "")
	}

	if f.Ceiling < 0 {
		res.AddError(CodeInvalidCeiling, fmt.Sprintf("ceiling must not be negative, got %d", f.Ceiling), "", "")
	}

	if f.Capacity < 0 {
		res.AddError(CodeInvalidCapacity, fmt.Sprintf("capacity must not be negative, got %d", f.Capacity), "", "")
	}

	if f.Output == "" {
		res.AddError(CodeInvalidOutput, "output file name is empty", "", "")
	}

	if len(f.Types) == 0 {
		res.AddWarning(CodeNoTypes, "no types listed", "", "")
	}

	seen := map[string]struct{}{}

	for _, ts := range f.Types {
		id := ts.ID()

		if ts.Package == "" {
			res.AddError(CodeMissingPackage, "type has no package and no default package is set", id, "")
		}

		if !token.IsIdentifier(ts.Name) || !token.IsExported(ts.Name) {
			res.AddError(CodeInvalidTypeName, fmt.Sprintf("%q is not an exported identifier", ts.Name), id, "")
		}

		if _, ok := seen[id]; ok {
			res.AddError(CodeDuplicateType, "type listed more than once", id, "")
		}
		seen[id] = struct{}{}

		modes := map[string]struct{}{}
		for _, m := range ts.Modes {
			if _, err := reflection.ParseMode(m); err != nil {
				res.AddError(CodeInvalidMode, err.Error(), id, m)
				continue
			}

			if _, ok := modes[m]; ok {
				res.AddWarning(CodeDuplicateMode, "mode listed more than once", id, m)
			}
			modes[m] = struct{}{}
		}
	}

	return res
}
