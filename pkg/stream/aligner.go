package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/logos/internal/pipeline"
	"github.com/aretw0/logos/pkg/domain"
	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

// Status literals returned by Execute.
const (
	StatusSuccess       = "SUCCESS_ABSOLUTE_NATURALNESS_CONFIRMED"
	StatusFileNotFound  = "ERROR_FILE_NOT_FOUND"
	StatusFailurePrefix = "SYSTEM_CRITICAL_FAILURE: "
)

// DefaultChunkSize is the number of code points per chunk.
const DefaultChunkSize = 1024

// Summary describes a finished stream run.
type Summary struct {
	RunID   string `json:"run_id" yaml:"run_id"`
	Chunks  int    `json:"chunks" yaml:"chunks"`
	Runes   int    `json:"runes" yaml:"runes"`
	Dropped int    `json:"dropped_bytes" yaml:"dropped_bytes"`

	// Statistics over the aligned values. Zero when no chunk was produced.
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Median float64 `json:"median" yaml:"median"`
}

// Aligner processes text streams.
type Aligner struct {
	chunkSize int
	logger    *slog.Logger
}

// Option configures the Aligner.
type Option func(*Aligner)

// WithChunkSize sets the number of code points per chunk. Values <= 0 are ignored.
func WithChunkSize(n int) Option {
	return func(a *Aligner) {
		if n > 0 {
			a.chunkSize = n
		}
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aligner) {
		a.logger = logger
	}
}

// New creates an Aligner.
func New(opts ...Option) *Aligner {
	a := &Aligner{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a
}

// Align reads r to the end and writes one aligned value per chunk to w.
// The context is checked between chunks.
func (a *Aligner) Align(ctx context.Context, r io.Reader, w io.Writer) (Summary, error) {
	sum := Summary{RunID: uuid.NewString()}
	logger := a.logger.With("run_id", sum.RunID)

	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)

	var values []float64
	var chunk strings.Builder
	count := 0

	flush := func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		v := pipeline.AlignSequence(chunk.String())
		values = append(values, v)
		if _, err := out.WriteString(pipeline.FormatFixed(v, domain.AlignedPrecision) + "\n"); err != nil {
			return fmt.Errorf("failed to write chunk %d: %w", len(values), err)
		}
		chunk.Reset()
		count = 0
		return nil
	}

	for {
		ch, size, err := in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return sum, fmt.Errorf("failed to read input: %w", err)
		}

		if ch == utf8.RuneError && size == 1 {
			sum.Dropped++
			continue
		}

		if ch == '\r' {
			next, _, err := in.ReadRune()
			if err == nil && next != '\n' {
				_ = in.UnreadRune()
			}
			ch = '\n'
		}

		chunk.WriteRune(ch)
		count++
		sum.Runes++

		if count == a.chunkSize {
			if err := flush(); err != nil {
				return sum, err
			}
		}
	}

	if count > 0 {
		if err := flush(); err != nil {
			return sum, err
		}
	}

	if err := out.Flush(); err != nil {
		return sum, fmt.Errorf("failed to flush output: %w", err)
	}

	sum.Chunks = len(values)
	if err := summarize(&sum, values); err != nil {
		return sum, err
	}

	logger.Info("stream aligned", "chunks", sum.Chunks, "runes", sum.Runes, "dropped_bytes", sum.Dropped)
	return sum, nil
}

func summarize(sum *Summary, values []float64) error {
	if len(values) == 0 {
		return nil
	}

	var err error
	if sum.Mean, err = stats.Mean(values); err != nil {
		return fmt.Errorf("failed to summarize: %w", err)
	}
	if sum.StdDev, err = stats.StandardDeviation(values); err != nil {
		return fmt.Errorf("failed to summarize: %w", err)
	}
	if sum.Min, err = stats.Min(values); err != nil {
		return fmt.Errorf("failed to summarize: %w", err)
	}
	if sum.Max, err = stats.Max(values); err != nil {
		return fmt.Errorf("failed to summarize: %w", err)
	}
	if sum.Median, err = stats.Median(values); err != nil {
		return fmt.Errorf("failed to summarize: %w", err)
	}
	return nil
}

// Execute aligns the file at inputPath into outputPath and reports one of the
// status literals. It never returns an error: failures are folded into the
// status string.
func (a *Aligner) Execute(ctx context.Context, inputPath, outputPath string) (string, Summary) {
	if _, err := os.Stat(inputPath); err != nil {
		if os.IsNotExist(err) {
			return StatusFileNotFound, Summary{}
		}
		return StatusFailurePrefix + err.Error(), Summary{}
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return StatusFailurePrefix + err.Error(), Summary{}
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return StatusFailurePrefix + err.Error(), Summary{}
	}

	sum, err := a.Align(ctx, in, out)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		a.logger.Error("stream failed", "input", inputPath, "error", err)
		return StatusFailurePrefix + err.Error(), sum
	}

	return StatusSuccess, sum
}
