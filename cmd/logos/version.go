package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/logos"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of logos",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "logos version %s\n", strings.TrimSpace(logos.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
