// Command fieldgen precomputes struct field descriptor tables and inspects
// struct layouts from source.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"struct-reflection/internal/cmd"
	"struct-reflection/internal/log"
)

func main() {
	yamlPaths, tomlPaths := cmd.ConfigCandidatePaths(cmd.FindUserConfig(os.Args[1:]))

	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("fieldgen"),
		kong.Description("Static field reflection for Go structs"),
		kong.UsageOnError(),
		// Flags and env override values from defaults files.
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}

	ctx.Bind(logger)
	ctx.BindTo(os.Stdout, (*io.Writer)(nil))

	err = ctx.Run()

	// FatalIfErrorf exits without running defers.
	if cerr := log.CloseAll(closeFiles); cerr != nil {
		_, _ = os.Stderr.WriteString("failed to close log file: " + cerr.Error() + "\n")
	}

	ctx.FatalIfErrorf(err)
}
