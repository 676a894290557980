package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/nonzero/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB    string
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded generate runs",
		Long: `List the generate runs recorded in a ledger, oldest first.

Each run shows its sequence number, run id, output file, package,
declaration count and declaration hash.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "generation ledger (required)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "show only the last n runs (0 = all)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := store.Open(opts.DB)
	if err != nil {
		return outputStoreError(formatter, err)
	}
	defer st.Close()

	gens, err := st.Generations(cmd.Context(), opts.Limit)
	if err != nil {
		return outputStoreError(formatter, err)
	}
	formatter.VerboseLog("Read %d run(s) from %s", len(gens), opts.DB)

	if formatter.Format == "json" {
		return formatter.Success(gens)
	}

	if len(gens) == 0 {
		fmt.Fprintln(formatter.Writer, "No runs recorded")
		return nil
	}

	for _, g := range gens {
		fmt.Fprintf(formatter.Writer, "%4d  %s  %s  package %s, %d constant(s), decls %s\n",
			g.Seq, shortID(g.ID), g.Output, g.Package, g.DeclCount, shortID(g.DeclHash))
	}
	return nil
}

func shortID(s string) string {
	if len(s) > 12 {
		return s[:12]
	}
	return s
}
