// Package codegen renders evaluated declarations as Go source.
//
// Every declaration becomes an untyped raw constant holding its evaluated
// value, a division guard and a wrapper variable. The declared expression is
// kept in a comment only; it may mix typed conversions and float constants
// that are valid for the evaluator but not as an operand of every kind. The
// guard makes the Go compiler repeat the zero check while building the
// generated file, independently of the generator.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/roach88/nonzero"
	"github.com/roach88/nonzero/internal/consteval"
)

// DefaultImportPath is the import path of the wrapper package.
const DefaultImportPath = "github.com/roach88/nonzero"

// Header is the first line of every generated file.
const Header = "// Code generated by nonzerogen. DO NOT EDIT."

// Options controls file-level output.
type Options struct {
	Package    string
	Source     string // declaration file shown in the header, optional
	ImportPath string
}

type entry struct {
	Name    string
	Raw     string
	RawExpr string
	Source  string
	Kind    string
	Doc     []string
	Value   string
}

type fileData struct {
	Header     string
	Source     string
	Package    string
	ImportPath string
	Entries    []entry
}

var fileTmpl = template.Must(template.New("file").Parse(`{{.Header}}
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.Package}}

import "{{.ImportPath}}"

const (
{{- range .Entries}}
	{{.Raw}} = {{.RawExpr}}
{{- end}}
)

// A zero value makes one of these a division by constant zero.
const (
{{- range .Entries}}
	_ = 1 / {{.Raw}}
{{- end}}
)
{{range .Entries}}
// {{.Name}} = {{.Source}} ({{.Kind}})
{{- range .Doc}}
// {{.}}
{{- end}}
var {{.Name}} = {{.Value}}
{{end}}`))

// Generate renders values as a gofmt'ed Go file.
func Generate(values []consteval.Value, opts Options) ([]byte, error) {
	if opts.Package == "" {
		return nil, errors.New("codegen: package name is required")
	}
	if opts.Package == "nonzero" {
		return nil, errors.New("codegen: cannot generate into a package named nonzero")
	}
	if len(values) == 0 {
		return nil, errors.New("codegen: nothing to generate")
	}
	if opts.ImportPath == "" {
		opts.ImportPath = DefaultImportPath
	}

	data := fileData{
		Header:     Header,
		Source:     opts.Source,
		Package:    opts.Package,
		ImportPath: opts.ImportPath,
	}
	for _, v := range values {
		if v.Int == nil {
			return nil, fmt.Errorf("codegen: %s: declaration was not evaluated", v.Decl.Name)
		}
		raw := RawName(v.Decl.Name)
		data.Entries = append(data.Entries, entry{
			Name:    v.Decl.Name,
			Raw:     raw,
			RawExpr: v.Int.String(),
			Source:  v.Decl.Source(),
			Kind:    v.Decl.Kind.String(),
			Doc:     docLines(v.Decl.Doc),
			Value:   wrapperExpr(v.Decl.Kind, raw),
		})
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("codegen: render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: format: %w", err)
	}
	return src, nil
}

// RawName is the name of the untyped constant holding a declaration's value.
func RawName(name string) string {
	return "raw" + name
}

// wrapperExpr builds the Lit call for kind k around the raw constant.
func wrapperExpr(k nonzero.Kind, raw string) string {
	switch k {
	case nonzero.KindU128, nonzero.KindI128:
		return fmt.Sprintf("nonzero.Lit(%s{Lo: %s & 0xffff_ffff_ffff_ffff, Hi: %s >> 64})", k.GoType(), raw, raw)
	default:
		return fmt.Sprintf("nonzero.Lit(%s(%s))", k.GoType(), raw)
	}
}

func docLines(doc string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}
	return strings.Split(doc, "\n")
}
