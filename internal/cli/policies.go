package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"keymerge/internal/merge"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List the available merge policies",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		_, _ = headingColor.Fprintln(out, "Merge Policies:")
		for _, p := range merge.Policies() {
			fmt.Fprintf(out, "  %-7s %s\n", p, p.Description())
		}
	},
}
