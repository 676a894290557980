package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/nonzero/internal/consteval"
	"github.com/roach88/nonzero/internal/suffix"
)

// SuffixResult describes how one literal resolves.
type SuffixResult struct {
	Literal string `json:"literal"`
	Kind    string `json:"kind"`
	GoType  string `json:"go_type"`
	Wrapper string `json:"wrapper"`
	Value   string `json:"value"`
}

// NewSuffixCommand creates the suffix command.
func NewSuffixCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suffix <literal>...",
		Short: "Resolve suffixed integer literals to their wrapper type",
		Long: `Resolve each literal, such as 1usize or -1i8, to the wrapper type its
suffix selects, then check that the value fits the type and is not zero.

Exits 1 when any literal is rejected.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuffix(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runSuffix(opts *RootOptions, literals []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	var (
		results []SuffixResult
		diags   []Diagnostic
	)
	for _, src := range literals {
		res, diag := resolveLiteral(src)
		if diag != nil {
			diags = append(diags, *diag)
			continue
		}
		formatter.VerboseLog("%s resolves to %s", src, res.Wrapper)
		results = append(results, res)
	}

	if len(diags) > 0 {
		return outputDiagnostics(formatter, "Suffix resolution", diags, ExitFailure)
	}

	if formatter.Format == "json" {
		return formatter.Success(results)
	}

	width := 0
	for _, r := range results {
		width = max(width, len(r.Literal))
	}
	for _, r := range results {
		fmt.Fprintf(formatter.Writer, "%-*s  %s  (%s = %s)\n", width, r.Literal, r.Wrapper, r.GoType, r.Value)
	}
	return nil
}

// resolveLiteral resolves the suffix and then checks the value for one literal.
func resolveLiteral(src string) (SuffixResult, *Diagnostic) {
	lit, err := suffix.Parse(src)
	if err != nil {
		d := toDiagnostic(err)
		d.Decl = src
		return SuffixResult{}, &d
	}

	n := lit.Big()
	if !consteval.InRange(n, lit.Kind) {
		return SuffixResult{}, &Diagnostic{
			Code:    consteval.CodeOverflow,
			Message: fmt.Sprintf("constant %s overflows %s", n, lit.Kind),
			Decl:    src,
		}
	}
	if consteval.IsZero(n, lit.Kind) {
		return SuffixResult{}, &Diagnostic{Code: consteval.CodeZero, Message: consteval.MsgZero, Decl: src}
	}

	return SuffixResult{
		Literal: src,
		Kind:    lit.Kind.String(),
		GoType:  lit.Kind.GoType(),
		Wrapper: "nonzero." + lit.Kind.Alias(),
		Value:   n.String(),
	}, nil
}
