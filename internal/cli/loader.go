package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/nonzero/internal/consteval"
	"github.com/roach88/nonzero/internal/decl"
	"github.com/roach88/nonzero/internal/suffix"
)

// LoadResult contains a declaration file and the values proven non-zero.
type LoadResult struct {
	File   *decl.File
	Values []consteval.Value
	Hash   string // decl.Hash of File
}

// LoadError represents an error that occurred before any declaration could
// be examined.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadDecls loads, validates and evaluates the declarations at path.
//
// A nil result means nothing could be loaded and the single error is a
// *LoadError. Otherwise every declaration problem is returned; evaluation is
// skipped while any declaration still fails validation.
func LoadDecls(path string) (*LoadResult, []error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("declarations not found: %s", path)}}
	}

	f, err := decl.Load(path)
	if err != nil {
		if declErrs := declErrors(err); len(declErrs) > 0 {
			return &LoadResult{File: &decl.File{Path: path}}, declErrs
		}
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: err.Error()}}
	}

	result := &LoadResult{File: f}
	if errs := decl.Validate(f); len(errs) > 0 {
		return result, errs
	}

	values, errs := consteval.Evaluate(f)
	result.Values = values
	result.Hash = decl.Hash(f)
	return result, errs
}

// declErrors splits err into its *decl.DeclError parts. It returns nil when
// any part is some other error.
func declErrors(err error) []error {
	parts := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		parts = joined.Unwrap()
	}
	out := make([]error, 0, len(parts))
	for _, part := range parts {
		var declErr *decl.DeclError
		if !errors.As(part, &declErr) {
			return nil
		}
		out = append(out, declErr)
	}
	return out
}

// Diagnostic is one declaration problem as reported by the CLI.
type Diagnostic struct {
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Decl    string    `json:"decl,omitempty"`
	Pos     *decl.Pos `json:"pos,omitempty"`
}

func (d Diagnostic) String() string {
	msg := d.Message
	if d.Decl != "" {
		msg = fmt.Sprintf("%s: %s", d.Decl, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Code, msg)
}

// toDiagnostic extracts code, message and position from the error types of
// the declaration pipeline.
func toDiagnostic(err error) Diagnostic {
	var (
		declErr   *decl.DeclError
		evalErr   *consteval.Error
		suffixErr *suffix.Error
		loadErr   *LoadError
	)
	switch {
	case errors.As(err, &declErr):
		return Diagnostic{Code: declErr.Code, Message: declErr.Message, Decl: declErr.Decl, Pos: posOrNil(declErr.Pos)}
	case errors.As(err, &evalErr):
		return Diagnostic{Code: evalErr.Code, Message: evalErr.Message, Decl: evalErr.Decl, Pos: posOrNil(evalErr.Pos)}
	case errors.As(err, &suffixErr):
		msg := suffixErr.Message
		if suffixErr.Suffix != "" {
			msg = fmt.Sprintf("%s `%s`", msg, suffixErr.Suffix)
		}
		return Diagnostic{Code: suffixErr.Code, Message: msg}
	case errors.As(err, &loadErr):
		return Diagnostic{Code: loadErr.Code, Message: loadErr.Message}
	default:
		return Diagnostic{Code: ErrCodeGeneric, Message: err.Error()}
	}
}

func posOrNil(p decl.Pos) *decl.Pos {
	if p.Filename == "" && !p.IsValid() {
		return nil
	}
	return &p
}

func toDiagnostics(errs []error) []Diagnostic {
	diags := make([]Diagnostic, len(errs))
	for i, err := range errs {
		diags[i] = toDiagnostic(err)
	}
	return diags
}

// Error code constants shared by all commands. Declaration problems carry
// the codes of the package that found them: E1xx decl, E2xx suffix, E3xx
// constant evaluation.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeLoadFailed  = "E004" // Declaration file could not be read or parsed
	ErrCodeWriteFailed = "E007" // File write error
	ErrCodeDBFailed    = "E008" // Ledger open/read/write error
	ErrCodeGenerate    = "E009" // Code generation failed
	ErrCodeConfig      = "E010" // nonzerogen.toml could not be loaded
)
