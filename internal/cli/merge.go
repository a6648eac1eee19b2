package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"keymerge/internal/coords"
	"keymerge/internal/curve"
	"keymerge/internal/merge"
)

var (
	mergePolicy    string
	mergeVerbose   bool
	mergePruneTrim int
)

var mergeCmd = &cobra.Command{
	Use:   "merge <committed> <incoming>",
	Short: "Merge an incoming keyframe curve into a committed one",
	Long: `Merge an incoming keyframe curve into a committed one.

Both arguments are coordinate lists like "(0,0),(3,5)", sorted ascending by
time. Where the two curves overlap in time, the selected policy decides
which values survive; see 'keymerge policies' for the available policies.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := merge.ParsePolicy(mergePolicy)
		if err != nil {
			return err
		}

		committed, err := coords.Parse(args[0])
		if err != nil {
			return fmt.Errorf("committed curve: %w", err)
		}
		incoming, err := coords.Parse(args[1])
		if err != nil {
			return fmt.Errorf("incoming curve: %w", err)
		}

		if mergeVerbose {
			overlap, err := curve.Overlap(committed, incoming)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Policy: %s\n", policy)
			fmt.Fprintf(cmd.OutOrStdout(), "Overlap: %s\n", coords.Format(overlap))
		}

		var merged []curve.Sample
		if policy == merge.PolicyPrune && cmd.Flags().Changed("prune-trim") {
			merged, err = merge.PruneN(committed, incoming, mergePruneTrim)
		} else {
			merged, err = merge.Merge(policy, committed, incoming)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), coords.Format(merged))
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringVarP(&mergePolicy, "policy", "p", "add", "Merge policy (see 'keymerge policies')")
	mergeCmd.Flags().BoolVarP(&mergeVerbose, "verbose", "v", false, "Print the policy and overlap region before the result")
	mergeCmd.Flags().IntVar(&mergePruneTrim, "prune-trim", merge.DefaultPruneTrim, "Samples the prune policy trims from the committed head")
}
