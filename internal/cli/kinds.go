package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/nonzero"
)

// KindInfo is one row of the kinds table.
type KindInfo struct {
	Suffix      string `json:"suffix"`
	GoType      string `json:"go_type"`
	Wrapper     string `json:"wrapper"`
	Bits        int    `json:"bits"`
	Signed      bool   `json:"signed"`
	ZeroPattern string `json:"zero_pattern"`
}

// NewKindsCommand creates the kinds command.
func NewKindsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "kinds",
		Short:         "List the supported integer kinds",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinds(rootOpts, cmd)
		},
	}

	return cmd
}

func runKinds(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	kinds := nonzero.Kinds()
	infos := make([]KindInfo, len(kinds))
	for i, k := range kinds {
		infos[i] = KindInfo{
			Suffix:      k.Suffix(),
			GoType:      k.GoType(),
			Wrapper:     "nonzero." + k.Alias(),
			Bits:        k.Bits(),
			Signed:      k.Signed(),
			ZeroPattern: hex.EncodeToString(nonzero.ZeroPattern(k)),
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(infos)
	}

	fmt.Fprintf(formatter.Writer, "%-6s  %-16s  %-13s  %4s  %s\n", "SUFFIX", "GO TYPE", "WRAPPER", "BITS", "SIGNED")
	for _, k := range infos {
		fmt.Fprintf(formatter.Writer, "%-6s  %-16s  %-13s  %4d  %t\n", k.Suffix, k.GoType, k.Wrapper, k.Bits, k.Signed)
	}
	return nil
}
