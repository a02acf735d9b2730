// Package main provides the CLI entry point for countprobe, a one-shot
// timing probe for a fixed counter loop.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/weiihann/countprobe/probe"
	"github.com/weiihann/countprobe/report"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		logger.Error("probe failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "countprobe",
		Short: "Time ten million iterations of a counter loop",
		Long: `Countprobe runs a fixed loop of 10,000,000 iterations that adds 1.0
on even indices and subtracts 1.0 on odd indices, then prints the final
count and the elapsed time in milliseconds.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProbe(cmd.Context(), logger, probe.New(nil),
				cmd.OutOrStdout())
		},
	}
}

func runProbe(
	ctx context.Context,
	logger *slog.Logger,
	p *probe.Probe,
	out io.Writer,
) error {
	logger.InfoContext(ctx, "starting probe",
		slog.Int("iterations", probe.Iterations),
	)

	result := p.Run()

	logger.InfoContext(ctx, "probe complete",
		slog.Duration("elapsed", result.Elapsed),
	)

	if err := report.Generate(out, result); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}

	return nil
}
