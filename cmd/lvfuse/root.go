// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfuse/agg"
	"github.com/katalvlaran/lvfuse/builder"
	"github.com/katalvlaran/lvfuse/fused"
	"github.com/katalvlaran/lvfuse/kernels"
	"github.com/katalvlaran/lvfuse/matrix"
)

// runConfig holds parsed flag values.
type runConfig struct {
	rows, cols int
	density    float64
	threads    int
	format     string
	aggs       string
	values     string
	unsafe     bool
	offset     float64
	seed       int64
	threshold  int64
	logLevel   string
}

const (
	flagAgg               = "agg"
	defaultAggs           = "sum,sumsq,min,max"
	defaultCompressedAggs = "sum,sumsq"
)

func newRootCmd() *cobra.Command {
	cfg := runConfig{}

	cmd := &cobra.Command{
		Use:           "lvfuse",
		Short:         "Run a fused multi-aggregate over a synthetic matrix block",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// compressed input only supports sum-like aggregates
			if cfg.format == matrix.FormatCompressed.String() && !cmd.Flags().Changed(flagAgg) {
				cfg.aggs = defaultCompressedAggs
			}
			err := run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}

			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.rows, "rows", 1024, "number of rows of the primary input")
	f.IntVar(&cfg.cols, "cols", 1024, "number of columns of the primary input")
	f.Float64Var(&cfg.density, "density", 0.1, "fraction of non-zero cells in [0,1]")
	f.IntVar(&cfg.threads, "threads", runtime.GOMAXPROCS(0), "requested degree of parallelism")
	f.StringVar(&cfg.format, "format", matrix.FormatDense.String(), "input representation: dense, sparse or compressed")
	f.StringVar(&cfg.aggs, flagAgg, defaultAggs,
		"comma-separated aggregation list (default for --format compressed: "+defaultCompressedAggs+")")
	f.StringVar(&cfg.values, "values", "uniform", "cell value distribution: uniform, normal or integer")
	f.BoolVar(&cfg.unsafe, "unsafe", false, "declare the operator sparse-unsafe (visit implicit zeros)")
	f.Float64Var(&cfg.offset, "offset", 0, "constant added to every cell before aggregation (non-zero implies --unsafe)")
	f.Int64Var(&cfg.seed, "seed", 42, "random seed for the generated block")
	f.Int64Var(&cfg.threshold, "threshold", fused.DefaultParallelThreshold, "input size below which execution is serial")
	f.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	return cmd
}

// run builds the input, executes the operator and writes a report to out.
func run(out, errOut io.Writer, cfg runConfig) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	format, err := matrix.ParseFormat(cfg.format)
	if err != nil {
		return fmt.Errorf("--format: %w", err)
	}
	kinds, err := agg.ParseKinds(cfg.aggs)
	if err != nil {
		return fmt.Errorf("--agg: %w", err)
	}
	valueOpt, err := valueOption(cfg.values)
	if err != nil {
		return err
	}
	if cfg.threshold < 0 {
		return fmt.Errorf("--threshold: must be >= 0, got %d", cfg.threshold)
	}

	start := time.Now()
	x, err := builder.BuildBlock(cfg.rows, cfg.cols,
		[]builder.BuilderOption{builder.WithSeed(cfg.seed), builder.WithFormat(format), valueOpt},
		builder.RandomSparse(cfg.density))
	if err != nil {
		return err
	}
	logger.Info("input built",
		slog.String("format", x.Format().String()),
		slog.Int("rows", x.Rows()),
		slog.Int("cols", x.Cols()),
		slog.Int64("nnz", x.NonZeros()),
		slog.Duration("elapsed", time.Since(start)),
	)

	var (
		kernel  fused.Kernel = kernels.CellAgg(kinds...)
		scalars []float64
	)
	if cfg.offset != 0 {
		kernel = kernels.Offset(kinds...)
		scalars = []float64{cfg.offset}
	}
	safe := !cfg.unsafe && kernels.SparseSafe(cfg.offset, kinds...)
	if format == matrix.FormatCompressed && !safe {
		return fmt.Errorf("--agg %s with --format compressed: only sum and sumsq without --offset or --unsafe: %w",
			cfg.aggs, fused.ErrUnsafeCompressed)
	}

	op, err := fused.New(kernel, safe, kinds,
		fused.WithLogger(logger),
		fused.WithParallelThreshold(cfg.threshold),
		fused.WithName("CLI"))
	if err != nil {
		return err
	}

	inputs := []*matrix.Block{x}
	plan, err := op.Plan(inputs, cfg.threads)
	if err != nil {
		return err
	}

	start = time.Now()
	res, err := op.Execute(inputs, scalars, cfg.threads)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	return report(out, op, x, plan, res, elapsed)
}

// valueOption maps --values to a builder value distribution.
func valueOption(name string) (builder.BuilderOption, error) {
	switch name {
	case "uniform":
		return builder.WithValueRange(builder.DefaultValueLow, builder.DefaultValueHigh), nil
	case "normal":
		return builder.WithNormalValues(0, 1), nil
	case "integer":
		return builder.WithIntegerValues(-9, 9), nil
	}

	return nil, fmt.Errorf("--values: unknown distribution %q", name)
}

// report prints the plan summary followed by one line per aggregate.
func report(out io.Writer, op *fused.MultiAggregate, x *matrix.Block, plan fused.Plan, res *matrix.Block, elapsed time.Duration) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "operator\t%s\n", op.Type())
	fmt.Fprintf(tw, "input\t%s %dx%d nnz=%d\n", x.Format(), x.Rows(), x.Cols(), x.NonZeros())
	fmt.Fprintf(tw, "sparse-safe\t%t\n", op.SparseSafe())
	fmt.Fprintf(tw, "size\t%d\n", plan.Size)
	fmt.Fprintf(tw, "parallel\t%t (threads=%d, tasks=%d)\n", plan.Parallel, plan.Threads, len(plan.Ranges))
	fmt.Fprintf(tw, "result\t%s\n", res.Format())
	for k, name := range agg.Names(op.AggKinds()) {
		v, err := res.Get(0, k)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%.17g\n", name, v)
	}
	fmt.Fprintf(tw, "elapsed\t%s\n", elapsed)

	return tw.Flush()
}
