package main

import (
	"encoding/json"

	"github.com/aretw0/logos"
	"github.com/spf13/cobra"
)

var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "Print the constants registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(logos.Constants())
	},
}

func init() {
	rootCmd.AddCommand(constantsCmd)
}
