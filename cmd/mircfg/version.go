package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mircfg/internal/version"
)

var versionShowDate bool

func init() {
	versionCmd.Flags().BoolVar(&versionShowDate, "date", false, "include build timestamp")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show mircfg build information",
	Run: func(cmd *cobra.Command, _ []string) {
		v := strings.TrimSpace(version.Version)
		if v == "" {
			v = "dev"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "mircfg %s\n", v)
		if commit := strings.TrimSpace(version.GitCommit); commit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
		}
		if versionShowDate {
			date := strings.TrimSpace(version.BuildDate)
			if date == "" {
				date = "unknown"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", date)
		}
	},
}
