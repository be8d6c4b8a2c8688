package main

import (
	"fmt"

	"github.com/aretw0/logos/pkg/stream"
	"github.com/spf13/cobra"
)

// streamCmd represents the stream command
var streamCmd = &cobra.Command{
	Use:   "stream <input> <output>",
	Short: "Align a text file chunk by chunk",
	Long: `Reads the input file in chunks of code points, writes one aligned value per
chunk to the output file and prints the final status.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		chunkSize := cfg.Stream.ChunkSize
		if cmd.Flags().Changed("chunk-size") {
			chunkSize, _ = cmd.Flags().GetInt("chunk-size")
		}

		aligner := stream.New(stream.WithChunkSize(chunkSize), stream.WithLogger(logger))
		status, sum := aligner.Execute(cmd.Context(), args[0], args[1])

		logger.Info("stream finished",
			"run_id", sum.RunID,
			"chunks", sum.Chunks,
			"runes", sum.Runes,
			"dropped_bytes", sum.Dropped,
			"mean", sum.Mean,
			"stddev", sum.StdDev,
		)
		fmt.Fprintf(cmd.OutOrStdout(), "PROCESS_STATUS: %s\n", status)

		if status != stream.StatusSuccess {
			return fmt.Errorf("stream failed: %s", status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(streamCmd)
	streamCmd.Flags().Int("chunk-size", stream.DefaultChunkSize, "Code points per chunk (overrides config)")
}
