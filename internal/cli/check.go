package cli

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// CheckedDecl is one declaration that passed every check.
type CheckedDecl struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Source string `json:"source"`
	Value  string `json:"value"`
	Bytes  string `json:"bytes"` // little-endian hex
}

// CheckResult holds the outcome of a successful check.
type CheckResult struct {
	Valid   bool          `json:"valid"`
	Package string        `json:"package"`
	Hash    string        `json:"hash"`
	Decls   []CheckedDecl `json:"decls"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <decls>",
		Short: "Check declarations without generating code",
		Long: `Load a declaration file (CUE directory or file, or YAML), resolve every
literal suffix, evaluate every value and reject zeros and overflows.

Exits 1 when any declaration is rejected, 2 when the file cannot be read.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	result, errs := LoadDecls(path)
	if result == nil && len(errs) > 0 {
		var loadErr *LoadError
		if errors.As(errs[0], &loadErr) {
			return outputCommandError(formatter, loadErr.Code, loadErr.Message, nil)
		}
		return outputCommandError(formatter, ErrCodeGeneric, errs[0].Error(), nil)
	}

	formatter.VerboseLog("Loaded %d declaration(s) from %s (package %s)",
		len(result.File.Decls), path, result.File.Package)

	if len(errs) > 0 {
		return outputDiagnostics(formatter, "Check", toDiagnostics(errs), ExitFailure)
	}

	checked := CheckResult{
		Valid:   true,
		Package: result.File.Package,
		Hash:    result.Hash,
		Decls:   make([]CheckedDecl, len(result.Values)),
	}
	for i, v := range result.Values {
		checked.Decls[i] = CheckedDecl{
			Name:   v.Decl.Name,
			Kind:   v.Decl.Kind.String(),
			Source: v.Decl.Source(),
			Value:  v.Int.String(),
			Bytes:  hex.EncodeToString(v.Bytes),
		}
	}

	return outputCheckSuccess(formatter, checked)
}

// outputCheckSuccess outputs the checked declarations.
func outputCheckSuccess(formatter *OutputFormatter, result CheckResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ %d declaration(s) valid (package %s)\n\n",
		len(result.Decls), result.Package)

	nameWidth, kindWidth := 0, 0
	for _, d := range result.Decls {
		nameWidth = max(nameWidth, len(d.Name))
		kindWidth = max(kindWidth, len(d.Kind))
	}
	for _, d := range result.Decls {
		fmt.Fprintf(formatter.Writer, "  %-*s  %-*s  %s\n", nameWidth, d.Name, kindWidth, d.Kind, d.Value)
	}

	return nil
}
