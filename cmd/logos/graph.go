package main

import (
	"fmt"

	"github.com/aretw0/logos"
	"github.com/aretw0/logos/internal/presentation/graph"
	"github.com/aretw0/logos/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [text...]",
	Short: "Export a run as a Mermaid diagram",
	Long:  `Runs the pipeline once and outputs a Mermaid flowchart (graph LR) with the output of every stage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workflow, err := readWorkflow(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		var overlay *graph.Overlay
		if focus, _ := cmd.Flags().GetString("focus"); focus != "" {
			if !knownStage(focus) {
				return fmt.Errorf("unknown stage %q", focus)
			}
			overlay = &graph.Overlay{Focus: domain.Stage(focus)}
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(logos.Trace(workflow), overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("focus", "", "Highlight one stage (ingest, stabilize, detect, persist, align, certify)")
}

func knownStage(name string) bool {
	for _, s := range domain.Stages {
		if string(s) == name {
			return true
		}
	}
	return false
}
