package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aloncha/Kelas-Alpro/internal/app"
	"github.com/aloncha/Kelas-Alpro/internal/cli"
	"github.com/aloncha/Kelas-Alpro/internal/dataset"
	"github.com/aloncha/Kelas-Alpro/internal/search"
)

// main is the entrypoint for the binary search driver. It takes no arguments.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run searches the reference dataset once with the binary kernel.
func run(in io.Reader, outW, errW io.Writer) error {
	cfg, err := app.NewConfig(app.Config{
		Kernel: search.BinaryName,
		Size:   dataset.ReferenceSize,
	})
	if err != nil {
		return err
	}

	if err := app.NewApp(outW, errW, cfg).Search(context.Background(), in); err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	return nil
}
