package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"struct-reflection/internal/analyze"
	"struct-reflection/reflection"
)

// Dump prints the field descriptors of one struct type, computed from
// source without running the program.
type Dump struct {
	Package    string `arg:"" help:"Import path or pattern of the package"`
	Type       string `arg:"" help:"Name of the struct type"`
	Exhaustive bool   `help:"Descend into nested aggregate members" short:"e"`
	Format     string `help:"Output format" enum:"table,yaml,toml" default:"table" short:"f"`
	Dir        string `help:"Directory packages are loaded from" type:"path"`

	ProfileFlags `embed:""`
}

// DumpResult is the structured form of a dump.
type DumpResult struct {
	Type   string        `yaml:"type" toml:"type"`
	Mode   string        `yaml:"mode" toml:"mode"`
	Count  int           `yaml:"count" toml:"count"`
	Fields []FieldRecord `yaml:"fields" toml:"fields"`
}

// FieldRecord is one descriptor in a DumpResult.
type FieldRecord struct {
	Name           string `yaml:"name" toml:"name"`
	Type           string `yaml:"type" toml:"type"`
	EnclosingType  string `yaml:"enclosing_type" toml:"enclosing_type"`
	EnclosingField string `yaml:"enclosing_field,omitempty" toml:"enclosing_field,omitempty"`
	Base           string `yaml:"base,omitempty" toml:"base,omitempty"`
}

// Run is called by Kong when the dump command is executed.
func (c *Dump) Run(logger *slog.Logger, out io.Writer) error {
	result, err := c.Collect(logger)
	if err != nil {
		return err
	}

	return writeDump(out, c.Format, result)
}

// Collect loads the package and computes the descriptors of the type.
func (c *Dump) Collect(logger *slog.Logger) (*DumpResult, error) {
	profile, err := c.Resolve()
	if err != nil {
		return nil, err
	}

	mode := reflection.Shallow
	if c.Exhaustive {
		mode = reflection.Exhaustive
	}

	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = c.Dir

	logger.Debug("loading package", "package", c.Package)

	pkg, err := analyzer.LoadPackage(c.Package)
	if err != nil {
		return nil, err
	}

	named, err := analyzer.LookupStruct(analyze.TypeID{PkgPath: pkg.Path, Name: c.Type})
	if err != nil {
		return nil, err
	}

	dumper, err := analyze.NewStructDumper(named, profile)
	if err != nil {
		return nil, err
	}

	n, err := reflection.Count(dumper, mode)
	if err != nil {
		return nil, err
	}

	entries, err := reflection.Collect(dumper, mode, n)
	if err != nil {
		return nil, err
	}

	result := &DumpResult{
		Type:   dumper.TypeName(),
		Mode:   mode.String(),
		Count:  entries.Len(),
		Fields: make([]FieldRecord, 0, entries.Len()),
	}

	for _, e := range entries.All() {
		rec := FieldRecord{
			Name:           e.FieldName(),
			Type:           e.FieldTypeName(),
			EnclosingType:  e.EnclosingFieldTypeName(),
			EnclosingField: e.EnclosingFieldName(),
		}
		rec.Base, _ = e.ProvidingBaseClassName()

		result.Fields = append(result.Fields, rec)
	}

	return result, nil
}

func writeDump(out io.Writer, format string, result *DumpResult) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return err
		}

		_, err = out.Write(data)

		return err
	case "toml":
		data, err := toml.Marshal(*result)
		if err != nil {
			return err
		}

		_, err = out.Write(data)

		return err
	case "table", "":
		return writeTable(out, result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeTable(out io.Writer, result *DumpResult) error {
	if _, err := fmt.Fprintf(out, "%s (%s, %d fields)\n", result.Type, result.Mode, result.Count); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tTYPE\tENCLOSING TYPE\tENCLOSING FIELD\tBASE")

	for i, f := range result.Fields {
		fmt.Fprintln(tw, strconv.Itoa(i)+"\t"+f.Name+"\t"+f.Type+"\t"+f.EnclosingType+"\t"+dash(f.EnclosingField)+"\t"+dash(f.Base))
	}

	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
