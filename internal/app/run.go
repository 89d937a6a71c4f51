package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/aloncha/Kelas-Alpro/internal/compare"
	"github.com/aloncha/Kelas-Alpro/internal/ctxlog"
	"github.com/aloncha/Kelas-Alpro/internal/dataset"
	"github.com/aloncha/Kelas-Alpro/internal/grid"
	"github.com/aloncha/Kelas-Alpro/internal/search"
)

// Prompt is written before the search key is read.
const Prompt = "Enter integer search key: "

// ErrMalformedKey is returned when the input does not start with an integer.
var ErrMalformedKey = errors.New("invalid search key")

// ErrDisagreement is returned by Compare when the kernels answered a key
// differently.
var ErrDisagreement = errors.New("search kernels disagree")

// Search builds the dataset, reads one key from in, runs the configured
// kernel and prints a single result line.
func (a *App) Search(ctx context.Context, in io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Search started.", "kernel", a.config.Kernel, "size", a.config.Size)

	seq, err := dataset.Build(a.config.Size)
	if err != nil {
		return fmt.Errorf("failed to build dataset: %w", err)
	}
	logger.Debug("Dataset built.", "size", seq.Len())

	kernel, err := search.Lookup(a.config.Kernel)
	if err != nil {
		return err
	}

	fmt.Fprint(a.outW, Prompt)
	key, err := readKey(in)
	if err != nil {
		return err
	}
	logger.Debug("Search key read.", "key", key)

	pos := kernel(seq, key)
	logger.Debug("Kernel finished.", "kernel", a.config.Kernel, "result", pos)

	if idx, ok := pos.Index(); ok {
		fmt.Fprintf(a.outW, "Found value at index %d\n", idx)
	} else {
		fmt.Fprintln(a.outW, "Value not found")
	}
	return nil
}

// readKey parses one decimal integer from the first whitespace-delimited
// token. Leading whitespace, including blank lines, is skipped. Only the
// leading [+-]?[0-9]+ prefix of the token counts, so "12abc" reads as 12 and
// "050" as fifty; base prefixes and digit separators are not honoured.
func readKey(in io.Reader) (int, error) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedKey, err)
		}
		return 0, fmt.Errorf("%w: no input", ErrMalformedKey)
	}
	token := sc.Text()

	start := 0
	if token[0] == '+' || token[0] == '-' {
		start = 1
	}
	end := start
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	if end == start {
		return 0, fmt.Errorf("%w: expected integer, got %q", ErrMalformedKey, token)
	}

	key, err := strconv.ParseInt(token[:end], 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}
	return int(key), nil
}

// Compare loads the configured grid, runs both kernels over it and renders
// the report.
func (a *App) Compare(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Compare started.", "grid_path", a.config.GridPath)

	g, err := grid.Load(ctx, a.config.GridPath)
	if err != nil {
		return err
	}
	logger.Info("Grid loaded.", "datasets", len(g.Datasets), "probes", len(g.Probes))

	report := compare.Run(ctx, g)
	if err := compare.Render(a.outW, report, a.config.ReportFormat); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if report.Disagreements > 0 {
		return fmt.Errorf("%w on %d key(s)", ErrDisagreement, report.Disagreements)
	}
	logger.Info("Comparison finished.", "probes", len(report.Probes))
	return nil
}
