package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mircfg/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "mircfg <artifact>",
	Short: "Render MIR control-flow graphs from a compiled artifact",
	Long: `mircfg extracts the embedded MIR section from a compiled artifact and
renders each function's control-flow graph with Graphviz`,
	Args: cobra.ExactArgs(1),
	RunE: runGraph,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		color.NoColor = !(colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
}

func main() {
	rootCmd.Version = version.Version

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
