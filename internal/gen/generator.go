package gen

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"struct-reflection/internal/analyze"
	"struct-reflection/internal/diagnostic"
	"struct-reflection/reflection"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Profile selects nested type name style and the dump ceiling.
	Profile reflection.Profile
	// Capacity bounds every table; larger types fail the run.
	Capacity int
	// Filename is the name of the file generated in each package.
	Filename string
	// ReflectionImport is the import path of package reflection.
	ReflectionImport string
	// Concurrency limits how many tables are built at once.
	Concurrency int
	// Logger receives progress and warnings.
	Logger *slog.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Profile:          reflection.DefaultProfile,
		Capacity:         reflection.DefaultCapacity,
		Filename:         "fields_gen.go",
		ReflectionImport: "struct-reflection/reflection",
		Concurrency:      4,
		Logger:           slog.Default(),
	}
}

// Target names a struct type and the modes to build tables for.
type Target struct {
	ID    analyze.TypeID
	Modes []reflection.Mode
}

// Table is the precomputed field info of one type in one mode.
type Table struct {
	ID      analyze.TypeID
	Mode    reflection.Mode
	Entries []reflection.FieldEntry
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the package the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "fields_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generator builds descriptor tables and renders them as Go source.
type Generator struct {
	config      GeneratorConfig
	analyzer    *analyze.Analyzer
	diagnostics *diagnostic.Diagnostics
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, analyzer *analyze.Analyzer) *Generator {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}

	return &Generator{
		config:      config,
		analyzer:    analyzer,
		diagnostics: &diagnostic.Diagnostics{},
	}
}

// Diagnostics returns the diagnostics of the last run.
func (g *Generator) Diagnostics() *diagnostic.Diagnostics {
	return g.diagnostics
}

// Generate builds the tables of all targets and renders one file per
// package. Any diagnostic error fails the whole run.
func (g *Generator) Generate(ctx context.Context, targets []Target) ([]GeneratedFile, error) {
	tables, err := g.BuildTables(ctx, targets)
	if err != nil {
		return nil, err
	}

	byPkg := make(map[string][]Table)
	for _, table := range tables {
		byPkg[table.ID.PkgPath] = append(byPkg[table.ID.PkgPath], table)
	}

	pkgPaths := make([]string, 0, len(byPkg))
	for pkgPath := range byPkg {
		pkgPaths = append(pkgPaths, pkgPath)
	}
	slices.Sort(pkgPaths)

	files := make([]GeneratedFile, 0, len(pkgPaths))
	for _, pkgPath := range pkgPaths {
		file, err := g.renderPackage(pkgPath, byPkg[pkgPath])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", pkgPath, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// BuildTables loads the target packages and computes every requested
// table. Tables are returned sorted by package, type name and mode.
func (g *Generator) BuildTables(ctx context.Context, targets []Target) ([]Table, error) {
	g.diagnostics = &diagnostic.Diagnostics{}

	if err := g.loadPackages(targets); err != nil {
		return nil, err
	}

	type job struct {
		id   analyze.TypeID
		mode reflection.Mode
	}

	var jobs []job
	for _, target := range targets {
		for _, mode := range target.Modes {
			jobs = append(jobs, job{id: target.ID, mode: mode})
		}
	}

	results := make([]*Table, len(jobs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.config.Concurrency)

	for i, j := range jobs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = g.buildTable(j.id, j.mode)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, w := range g.diagnostics.Warnings {
		g.config.Logger.Warn("field table warning", "type", w.TypeName, "mode", w.Mode, "code", w.Code, "message", w.Message)
	}

	if g.diagnostics.HasErrors() {
		return nil, fmt.Errorf("building field tables: %w", g.diagnostics.Error())
	}

	tables := make([]Table, 0, len(results))
	for _, t := range results {
		tables = append(tables, *t)
	}

	slices.SortFunc(tables, func(a, b Table) int {
		return cmp.Or(
			cmp.Compare(a.ID.PkgPath, b.ID.PkgPath),
			cmp.Compare(a.ID.Name, b.ID.Name),
			cmp.Compare(a.Mode, b.Mode),
		)
	})

	return tables, nil
}

func (g *Generator) loadPackages(targets []Target) error {
	var pending []string
	for _, target := range targets {
		pkgPath := target.ID.PkgPath
		if g.analyzer.Package(pkgPath) == nil && !slices.Contains(pending, pkgPath) {
			pending = append(pending, pkgPath)
		}
	}

	if len(pending) == 0 {
		return nil
	}

	g.config.Logger.Debug("loading packages", "packages", pending)

	return g.analyzer.LoadPackages(pending...)
}

// buildTable computes one table, recording failures as diagnostics.
// It returns nil when the table could not be built.
func (g *Generator) buildTable(id analyze.TypeID, mode reflection.Mode) *Table {
	typeName := id.String()

	named, err := g.analyzer.LookupStruct(id)
	if err != nil {
		code := diagnostic.CodeGenerationError
		switch {
		case errors.Is(err, analyze.ErrTypeNotFound):
			code = diagnostic.CodeTypeNotFound
		case errors.Is(err, reflection.ErrNotStruct):
			code = diagnostic.CodeNotStruct
		}

		g.diagnostics.AddError(code, err.Error(), typeName, mode.String())

		return nil
	}

	dumper, err := analyze.NewStructDumper(named, g.config.Profile)
	if err != nil {
		g.diagnostics.AddError(diagnostic.CodeNotStruct, err.Error(), typeName, mode.String())
		return nil
	}

	entries, err := reflection.Collect(dumper, mode, g.config.Capacity)
	if err != nil {
		g.recordCollectError(dumper, mode, err)
		return nil
	}

	if entries.Len() == 0 {
		g.diagnostics.AddWarning(diagnostic.CodeEmptyTable, "type has no fields", typeName, mode.String())
	}

	g.config.Logger.Debug("built field table", "type", typeName, "mode", mode.String(), "fields", entries.Len())

	return &Table{ID: id, Mode: mode, Entries: entries.Slice()}
}

func (g *Generator) recordCollectError(dumper *analyze.StructDumper, mode reflection.Mode, err error) {
	typeName := dumper.TypeName()

	switch {
	case errors.Is(err, reflection.ErrCapacityExceeded):
		msg := fmt.Sprintf("does not fit in capacity %d", g.config.Capacity)
		if n, countErr := reflection.Count(dumper, mode); countErr == nil {
			msg = fmt.Sprintf("needs %d fields, capacity is %d", n, g.config.Capacity)
		}

		g.diagnostics.AddError(diagnostic.CodeCapacity, msg, typeName, mode.String())
	case errors.Is(err, reflection.ErrRecursionCeiling):
		g.diagnostics.AddError(diagnostic.CodeCeiling, err.Error(), typeName, mode.String())
	default:
		g.diagnostics.AddError(diagnostic.CodeGenerationError, err.Error(), typeName, mode.String())
	}
}
