package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Colors for CLI output sections
var headingColor = color.New(color.FgCyan, color.Bold)

// rootCmd is the root command for keymerge.
var rootCmd = &cobra.Command{
	Use:     "keymerge",
	Version: "dev",
	Short:   "Keyframe curve merger",
	Long: `keymerge merges two time-sorted keyframe curves wherever their time
ranges overlap, using one of seven merge policies.

Curves are written as coordinate lists like "(0,0),(3,5)". The committed
curve (the first argument) must start no later than the incoming curve.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(policiesCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the keymerge CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
