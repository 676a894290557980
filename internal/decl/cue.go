package decl

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"
)

// LoadCUE loads the CUE package in dir (or the single .cue file at path)
// and reads its `nonzero` struct.
func LoadCUE(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load declarations: %w", err)
	}

	dir, args := path, []string{"."}
	if !info.IsDir() {
		dir, args = filepath.Dir(path), []string{"./" + filepath.Base(path)}
	}

	instances := load.Instances(args, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, fmt.Errorf("load declarations: no CUE instances in %s", path)
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, fmt.Errorf("load declarations: %w", formatCUEError(inst.Err))
	}

	ctx := cuecontext.New()
	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("build declarations: %w", formatCUEError(err))
	}

	f, err := CompileCUE(value)
	if err != nil {
		return nil, err
	}
	f.Package = inst.PkgName
	f.Path = path
	return f, nil
}

// CompileCUE reads declarations from the `nonzero` field of v. The package
// name is left empty; LoadCUE fills it from the CUE package clause.
//
// Every malformed declaration is reported: the error joins one *DeclError per
// problem, in field order.
func CompileCUE(v cue.Value) (*File, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	f := &File{}
	root := v.LookupPath(cue.ParsePath("nonzero"))
	if !root.Exists() {
		return f, nil
	}

	iter, err := root.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}
	var errs []error
	for iter.Next() {
		d, declErrs := compileCUEDecl(iter.Selector().String(), iter.Value())
		if len(declErrs) > 0 {
			errs = append(errs, declErrs...)
			continue
		}
		f.Decls = append(f.Decls, d)
	}
	if len(errs) > 0 {
		return nil, stderrors.Join(errs...)
	}
	return f, nil
}

func compileCUEDecl(name string, v cue.Value) (Decl, []error) {
	d := Decl{Name: name, Pos: cuePos(v.Pos())}

	// Shorthand: Name: "4096usize"
	if s, err := v.String(); err == nil {
		d.Lit = s
		return d, nil
	}

	if v.IncompleteKind() != cue.StructKind {
		return d, []error{&DeclError{Decl: name, Field: "nonzero", Code: CodeShape,
			Message: "declaration must be a literal string or a struct", Pos: d.Pos}}
	}

	fields := map[string]*string{
		"lit":  &d.Lit,
		"expr": &d.Expr,
		"type": &d.Type,
		"doc":  &d.Doc,
	}
	iter, err := v.Fields()
	if err != nil {
		return d, []error{formatCUEError(err)}
	}
	var errs []error
	for iter.Next() {
		label := iter.Selector().String()
		dst, ok := fields[label]
		if !ok {
			errs = append(errs, &DeclError{Decl: name, Field: label, Code: CodeShape,
				Message: fmt.Sprintf("unknown field %q", label), Pos: cuePos(iter.Value().Pos())})
			continue
		}
		s, err := iter.Value().String()
		if err != nil {
			errs = append(errs, &DeclError{Decl: name, Field: label, Code: CodeShape,
				Message: fmt.Sprintf("%s must be a string", label), Pos: cuePos(iter.Value().Pos())})
			continue
		}
		*dst = s
	}
	return d, errs
}

func cuePos(p token.Pos) Pos {
	if !p.IsValid() {
		return Pos{}
	}
	return Pos{Filename: p.Filename(), Line: p.Line(), Column: p.Column()}
}

// formatCUEError keeps the first CUE error with its position.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	var pos Pos
	if positions := errors.Positions(first); len(positions) > 0 {
		pos = cuePos(positions[0])
	}
	return &DeclError{Field: "cue", Code: CodeShape, Message: first.Error(), Pos: pos}
}
