package analyze

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"struct-reflection/internal/match"
	"struct-reflection/reflection"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedModule

// ErrTypeNotFound is returned when a looked up type does not exist.
var ErrTypeNotFound = errors.New("type not found")

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string         // Import path
	Name  string         // Package name
	Dir   string         // Directory holding the package sources
	Types *types.Package // Type-checked package
}

// Analyzer loads Go packages and looks up struct types in them.
type Analyzer struct {
	packages map[string]*PackageInfo
	// Dir is the working directory for package loading; empty means the
	// current directory.
	Dir string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		packages: make(map[string]*PackageInfo),
	}
}

// LoadPackages loads the specified packages.
// Patterns are standard Go package patterns (e.g., "./fixtures", "struct-reflection/fixtures").
func (a *Analyzer) LoadPackages(patterns ...string) error {
	_, err := a.load(patterns...)
	return err
}

func (a *Analyzer) load(patterns ...string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		a.packages[pkg.PkgPath] = newPackageInfo(pkg)
	}

	return pkgs, nil
}

// LoadPackage loads the single package matched by pattern and returns it.
// Relative patterns such as "./model" resolve against Dir.
func (a *Analyzer) LoadPackage(pattern string) (*PackageInfo, error) {
	pkgs, err := a.load(pattern)
	if err != nil {
		return nil, err
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want 1", pattern, len(pkgs))
	}

	return a.packages[pkgs[0].PkgPath], nil
}

func newPackageInfo(pkg *packages.Package) *PackageInfo {
	info := &PackageInfo{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		Types: pkg.Types,
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	} else if pkg.Module != nil && pkg.Module.Dir != "" {
		info.Dir = pkg.Module.Dir
	}

	return info
}

// Package returns a loaded package, or nil if it was not loaded.
func (a *Analyzer) Package(pkgPath string) *PackageInfo {
	return a.packages[pkgPath]
}

// LookupStruct returns the named struct type identified by id.
func (a *Analyzer) LookupStruct(id TypeID) (*types.Named, error) {
	pkg := a.packages[id.PkgPath]
	if pkg == nil || pkg.Types == nil {
		return nil, fmt.Errorf("%w: package %s not loaded", ErrTypeNotFound, id.PkgPath)
	}

	obj := pkg.Types.Scope().Lookup(id.Name)
	typeName, ok := obj.(*types.TypeName)
	if !ok {
		if hint := suggestTypes(pkg.Types, id.Name); len(hint) > 0 {
			return nil, fmt.Errorf("%w: %s (did you mean %s?)", ErrTypeNotFound, id, strings.Join(hint, ", "))
		}

		return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, id)
	}

	named, ok := types.Unalias(typeName.Type()).(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a named type", reflection.ErrNotStruct, id)
	}

	if _, ok := named.Underlying().(*types.Struct); !ok {
		return nil, fmt.Errorf("%w: %s", reflection.ErrNotStruct, id)
	}

	if named.TypeParams().Len() > 0 {
		return nil, fmt.Errorf("%w: %s is generic", reflection.ErrNotStruct, id)
	}

	return named, nil
}

// suggestTypes returns exported type names of pkg close to name.
func suggestTypes(pkg *types.Package, name string) []string {
	var names []string
	for _, n := range pkg.Scope().Names() {
		if _, ok := pkg.Scope().Lookup(n).(*types.TypeName); ok && token.IsExported(n) {
			names = append(names, n)
		}
	}

	return match.Suggest(name, names, match.DefaultThreshold, 3)
}
