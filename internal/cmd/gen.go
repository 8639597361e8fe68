package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"struct-reflection/internal/analyze"
	"struct-reflection/internal/config"
	"struct-reflection/internal/gen"
)

// Gen generates field tables for the types listed in a config file.
type Gen struct {
	Spec   string `help:"Generator config file" short:"s" default:"fieldgen.yaml" type:"path"`
	Dir    string `help:"Directory packages are loaded from (defaults to the current directory)" type:"path"`
	DryRun bool   `help:"Print generated files instead of writing them" name:"dry-run"`
}

// Run is called by Kong when the gen command is executed.
func (c *Gen) Run(logger *slog.Logger, out io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return c.Generate(ctx, logger, out)
}

// Generate loads the config, builds every table and writes the files.
func (c *Gen) Generate(ctx context.Context, logger *slog.Logger, out io.Writer) error {
	file, err := config.LoadFile(c.Spec)
	if err != nil {
		return err
	}

	diags := config.Validate(file)
	for _, w := range diags.Warnings {
		logger.Warn("config warning", "type", w.TypeName, "code", w.Code, "message", w.Message)
	}

	if diags.HasErrors() {
		return fmt.Errorf("invalid config %s: %w", c.Spec, diags.Error())
	}

	genConfig, targets, err := generatorInput(file, logger)
	if err != nil {
		return err
	}

	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = c.Dir

	logger.Info("generating field tables", "spec", c.Spec, "types", len(targets))

	files, err := gen.NewGenerator(genConfig, analyzer).Generate(ctx, targets)
	if err != nil {
		return err
	}

	if c.DryRun {
		for _, f := range files {
			if _, err := fmt.Fprintf(out, "// %s/%s\n%s\n", f.Dir, f.Filename, f.Content); err != nil {
				return err
			}
		}

		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	for _, f := range files {
		logger.Info("wrote field tables", "dir", f.Dir, "file", f.Filename)
	}

	return nil
}

func generatorInput(file *config.File, logger *slog.Logger) (gen.GeneratorConfig, []gen.Target, error) {
	profile, err := file.ResolveProfile()
	if err != nil {
		return gen.GeneratorConfig{}, nil, err
	}

	genConfig := gen.DefaultGeneratorConfig()
	genConfig.Profile = profile
	genConfig.Capacity = file.Capacity
	genConfig.Filename = file.Output
	genConfig.Concurrency = file.Concurrency
	genConfig.Logger = logger

	targets := make([]gen.Target, 0, len(file.Types))
	for _, ts := range file.Types {
		modes, err := ts.ParsedModes()
		if err != nil {
			return gen.GeneratorConfig{}, nil, err
		}

		targets = append(targets, gen.Target{
			ID:    analyze.TypeID{PkgPath: ts.Package, Name: ts.Name},
			Modes: modes,
		})
	}

	return genConfig, targets, nil
}
