package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/logos"
	"github.com/aretw0/logos/internal/config"
	"github.com/aretw0/logos/internal/presentation/tui"
	"github.com/aretw0/logos/pkg/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process [text...]",
	Short: "Process a workflow text and print its report",
	Long: `Runs the pipeline once. Arguments are joined with single spaces; with no
arguments the whole of stdin is the workflow, byte for byte.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := cfg.Format
		if cmd.Flags().Changed("format") {
			format, _ = cmd.Flags().GetString("format")
		}

		workflow, err := readWorkflow(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		engine := logos.New(logos.WithLogger(logger))
		res := engine.Process(cmd.Context(), workflow)

		return writeResult(cmd.OutOrStdout(), workflow, res, format)
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
	processCmd.Flags().StringP("format", "f", config.FormatJSON, "Output format: json, yaml, text or pretty")
}

func readWorkflow(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func writeResult(w io.Writer, workflow string, res domain.Result, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)

	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()

	case config.FormatText:
		fmt.Fprintf(w, "signature: %s\n", res.Signature)
		fmt.Fprintf(w, "input_mass: %s\n", res.InputMass)
		fmt.Fprintf(w, "geometric_drift: triangle=%g circle=%g linear=%g\n",
			res.GeometricDrift.Triangle, res.GeometricDrift.Circle, res.GeometricDrift.Linear)
		fmt.Fprintf(w, "aligned_output: %s\n", res.AlignedOutput)
		fmt.Fprintf(w, "integrity_seal: %s\n", res.IntegritySeal)
		fmt.Fprintf(w, "status: %s\n", res.Status)
		return nil

	case config.FormatPretty:
		md := tui.ReportMarkdown(workflow, res)
		if f, ok := w.(*os.File); !ok || !tui.IsTerminal(f) {
			_, err := io.WriteString(w, md)
			return err
		}
		tui.PrintBanner(w)
		out, err := tui.NewRenderer()(md)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err

	default:
		return fmt.Errorf("unknown format %q (want json, yaml, text or pretty)", format)
	}
}
