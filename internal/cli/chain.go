package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"keymerge/internal/coords"
	"keymerge/internal/curve"
	"keymerge/internal/merge"
)

var (
	chainPolicy  string
	chainVerbose bool
)

var chainCmd = &cobra.Command{
	Use:   "chain [file]",
	Short: "Fold a series of keyframe curves into one",
	Long: `Fold a series of keyframe curves into one.

Reads one coordinate list per line, from a file or from stdin when no file
is given, and merges them in order with the selected policy: each merge's
output becomes the committed curve of the next merge. Blank lines and lines
starting with '#' are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := merge.ParsePolicy(chainPolicy)
		if err != nil {
			return err
		}

		in := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open curve file: %w", err)
			}
			defer f.Close()
			in = f
		}

		var committed []curve.Sample
		lineNo := 0
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			incoming, err := coords.Parse(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}

			committed, err = merge.Merge(policy, committed, incoming)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			if chainVerbose {
				fmt.Fprintf(cmd.OutOrStdout(), "after line %d: %s\n", lineNo, coords.Format(committed))
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read curves: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), coords.Format(committed))
		return nil
	},
}

func init() {
	chainCmd.Flags().StringVarP(&chainPolicy, "policy", "p", "add", "Merge policy (see 'keymerge policies')")
	chainCmd.Flags().BoolVarP(&chainVerbose, "verbose", "v", false, "Print the committed curve after each merge")
}
