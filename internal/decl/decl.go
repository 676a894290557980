package decl

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/roach88/nonzero"
	"github.com/roach88/nonzero/internal/suffix"
)

// Pos is a source position inside a declaration file.
type Pos struct {
	Filename string `json:"filename,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// IsValid reports whether the position carries a line number.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		return p.Filename
	}
	if p.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d", p.Filename, p.Line)
}

// Decl is one named non-zero constant.
type Decl struct {
	Name string       `json:"name"`
	Lit  string       `json:"lit,omitempty"`  // suffixed literal, e.g. "4096usize"
	Expr string       `json:"expr,omitempty"` // Go constant expression
	Type string       `json:"type,omitempty"` // suffix name, required with Expr
	Doc  string       `json:"doc,omitempty"`
	Kind nonzero.Kind `json:"-"` // set by Validate
	Pos  Pos          `json:"-"`
}

// Source returns the text that was declared, for diagnostics and comments.
func (d Decl) Source() string {
	if d.Lit != "" {
		return d.Lit
	}
	return d.Expr
}

// File is the result of loading one declaration source.
type File struct {
	Package string `json:"package"`
	Path    string `json:"path"`
	Decls   []Decl `json:"decls"`
}

// DeclError is a problem with a single declaration.
type DeclError struct {
	Decl    string
	Field   string
	Code    string
	Message string
	Pos     Pos
}

func (e *DeclError) Error() string {
	msg := e.Message
	if e.Decl != "" {
		msg = fmt.Sprintf("%s: %s", e.Decl, e.Message)
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, msg)
	}
	return msg
}

// Error codes for declaration problems. Suffix problems keep the codes from
// the suffix package.
const (
	CodeName      = "E101"
	CodeDuplicate = "E102"
	CodeShape     = "E103"
	CodeType      = "E104"
	CodeNoDecls   = "E105"
	CodePackage   = "E106"
)

// Validate resolves the kind of every declaration and checks names and
// shape. All problems are returned; the file is updated in place.
func Validate(f *File) []error {
	var errs []error

	if f.Package == "" || !token.IsIdentifier(f.Package) {
		errs = append(errs, &DeclError{
			Field:   "package",
			Code:    CodePackage,
			Message: fmt.Sprintf("invalid Go package name %q", f.Package),
			Pos:     Pos{Filename: f.Path},
		})
	}
	if len(f.Decls) == 0 {
		errs = append(errs, &DeclError{
			Field:   "nonzero",
			Code:    CodeNoDecls,
			Message: "no declarations found",
			Pos:     Pos{Filename: f.Path},
		})
	}

	seen := make(map[string]Pos, len(f.Decls))
	for i := range f.Decls {
		d := &f.Decls[i]

		if !token.IsIdentifier(d.Name) || !token.IsExported(d.Name) {
			errs = append(errs, &DeclError{Decl: d.Name, Field: "name", Code: CodeName,
				Message: "name must be an exported Go identifier", Pos: d.Pos})
		}
		if prev, dup := seen[d.Name]; dup {
			errs = append(errs, &DeclError{Decl: d.Name, Field: "name", Code: CodeDuplicate,
				Message: fmt.Sprintf("declared more than once (previous declaration at %s)", prev), Pos: d.Pos})
		}
		seen[d.Name] = d.Pos

		if err := resolveKind(d); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func resolveKind(d *Decl) error {
	switch {
	case d.Lit != "" && d.Expr != "":
		return &DeclError{Decl: d.Name, Field: "lit", Code: CodeShape,
			Message: "lit and expr are mutually exclusive", Pos: d.Pos}

	case d.Lit != "":
		if d.Type != "" {
			return &DeclError{Decl: d.Name, Field: "type", Code: CodeShape,
				Message: "type is implied by the literal suffix", Pos: d.Pos}
		}
		lit, err := suffix.Parse(d.Lit)
		if err != nil {
			var code, msg string
			var sErr *suffix.Error
			if errors.As(err, &sErr) {
				code, msg = sErr.Code, sErr.Message
				if sErr.Suffix != "" {
					msg = fmt.Sprintf("%s `%s`", msg, sErr.Suffix)
				}
			} else {
				code, msg = CodeShape, err.Error()
			}
			return &DeclError{Decl: d.Name, Field: "lit", Code: code, Message: msg, Pos: d.Pos}
		}
		d.Kind = lit.Kind

	case d.Expr != "":
		if d.Type == "" {
			return &DeclError{Decl: d.Name, Field: "type", Code: CodeType,
				Message: "expr requires a type such as \"usize\"", Pos: d.Pos}
		}
		k, ok := nonzero.ParseKind(d.Type)
		if !ok {
			return &DeclError{Decl: d.Name, Field: "type", Code: suffix.CodeUnknownSuffix,
				Message: fmt.Sprintf("%s `%s`", suffix.MsgUnknownSuffix, d.Type), Pos: d.Pos}
		}
		d.Kind = k

	default:
		return &DeclError{Decl: d.Name, Field: "lit", Code: CodeShape,
			Message: "one of lit or expr is required", Pos: d.Pos}
	}
	return nil
}
