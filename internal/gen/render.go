package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"text/template"

	"struct-reflection/internal/common"
	"struct-reflection/reflection"
)

var fileTemplate = template.Must(template.New("fields").Parse(`// Code generated by fieldgen. DO NOT EDIT.

package {{.PackageName}}

import (
	"reflect"

	"{{.ReflectionImport}}"
)

func init() {
{{- range .Tables}}
	reflection.Register(reflect.TypeFor[{{.TypeName}}](), reflection.{{.Mode}}, reflection.{{.Style}}, []reflection.FieldEntry{
{{- range .Entries}}
		{{.}},
{{- end}}
	})
{{- end}}
}
`))

// templateData holds all data needed for one generated file.
type templateData struct {
	PackageName      string
	ReflectionImport string
	Tables           []tableData
}

type tableData struct {
	TypeName string
	Mode     string
	Style    string
	Entries  []string
}

func (g *Generator) renderPackage(pkgPath string, tables []Table) (*GeneratedFile, error) {
	pkg := g.analyzer.Package(pkgPath)
	if pkg == nil {
		return nil, fmt.Errorf("package %s not loaded", pkgPath)
	}

	data := templateData{
		PackageName:      pkg.Name,
		ReflectionImport: g.config.ReflectionImport,
	}
	if data.PackageName == "" {
		data.PackageName = common.PkgAlias(pkgPath)
	}

	for _, table := range tables {
		td := tableData{
			TypeName: table.ID.Name,
			Mode:     modeConst(table.Mode),
			Style:    styleConst(g.config.Profile.NestedTypeNames),
		}

		for _, e := range table.Entries {
			td.Entries = append(td.Entries, entryExpr(e))
		}

		data.Tables = append(data.Tables, td)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	content, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, buf.String())
	}

	return &GeneratedFile{
		Dir:      pkg.Dir,
		Filename: g.config.Filename,
		Content:  content,
	}, nil
}

// entryExpr renders e as a Go expression rebuilding it.
func entryExpr(e reflection.FieldEntry) string {
	expr := fmt.Sprintf("reflection.NewFieldEntry(%s, %s, %s, %s)",
		strconv.Quote(e.FieldTypeName()),
		strconv.Quote(e.FieldName()),
		strconv.Quote(e.EnclosingFieldTypeName()),
		strconv.Quote(e.EnclosingFieldName()),
	)

	if base, ok := e.ProvidingBaseClassName(); ok {
		expr += ".WithProvidingBase(" + strconv.Quote(base) + ")"
	}

	return expr
}

func modeConst(m reflection.Mode) string {
	if m == reflection.Exhaustive {
		return "Exhaustive"
	}

	return "Shallow"
}

func styleConst(s reflection.NameStyle) string {
	if s == reflection.NameBare {
		return "NameBare"
	}

	return "NameQualified"
}
