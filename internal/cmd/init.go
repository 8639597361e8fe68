package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"struct-reflection/internal/config"
)

// Init scaffolds a generator config file.
type Init struct {
	Format  string `help:"Output format" enum:"yaml,toml" default:"yaml"`
	Package string `help:"Default package import path written to the template" default:"example.com/module/model"`
	Output  string `help:"Destination file path (defaults to fieldgen.<format>)" type:"path"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

// Run is called by Kong when the init command is executed.
func (c *Init) Run(logger *slog.Logger) error {
	format, err := config.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	dest := c.Output
	if dest == "" {
		dest = "fieldgen." + string(format)
	}

	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}

	destFormat, err := config.FormatFromPath(dest)
	if err != nil {
		return err
	}

	if destFormat != format {
		return fmt.Errorf("destination %s does not match format %s", dest, format)
	}

	if err := config.WriteFile(config.Template(c.Package), dest); err != nil {
		return err
	}

	logger.Info("wrote config template", "path", dest)

	return nil
}
