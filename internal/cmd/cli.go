// Package cmd holds the fieldgen command line commands.
package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"struct-reflection/internal/config"
	"struct-reflection/reflection"
)

// CLI is the root command of fieldgen.
type CLI struct {
	Config string  `help:"CLI defaults file (YAML or TOML)" type:"path" env:"FIELDGEN_CONFIG"`
	Log    LogFlag `embed:"" prefix:"log."`

	Gen  Gen  `cmd:"" help:"Generate precomputed field tables"`
	Dump Dump `cmd:"" help:"Print the field descriptors of a struct type"`
	Init Init `cmd:"" help:"Write a generator config template"`
}

// LogFlag configures logging.
type LogFlag struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"FIELDGEN_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" type:"path" env:"FIELDGEN_LOG_FILE"`
}

// ProfileFlags select the reflection profile on the command line.
type ProfileFlags struct {
	Profile string `help:"Profile preset" enum:"legacy,transitional,modern" default:"modern"`
	Names   string `help:"Override nested type name style (qualified or bare)"`
	Ceiling int    `help:"Override the dump ceiling when positive"`
}

// Resolve returns the profile selected by the flags.
func (p ProfileFlags) Resolve() (reflection.Profile, error) {
	f := config.File{Profile: p.Profile, Names: p.Names, Ceiling: p.Ceiling}
	return f.ResolveProfile()
}

// FindUserConfig returns the --config value from args, or from the
// FIELDGEN_CONFIG environment variable.
func FindUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}

		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}

	return os.Getenv("FIELDGEN_CONFIG")
}

// ConfigCandidatePaths lists CLI defaults files to try, in priority order.
func ConfigCandidatePaths(userPath string) (yamlPaths, tomlPaths []string) {
	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".toml":
			tomlPaths = append(tomlPaths, userPath)
		default:
			yamlPaths = append(yamlPaths, userPath)
		}
	}

	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "fieldgen"))
	}

	for _, dir := range dirs {
		yamlPaths = append(yamlPaths,
			filepath.Join(dir, ".fieldgen.yaml"),
			filepath.Join(dir, ".fieldgen.yml"),
		)
		tomlPaths = append(tomlPaths, filepath.Join(dir, ".fieldgen.toml"))
	}

	return yamlPaths, tomlPaths
}
