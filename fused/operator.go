// SPDX-License-Identifier: MIT

package fused

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/lvfuse/agg"
	"github.com/katalvlaran/lvfuse/matrix"
)

// typePrefix identifies multi-aggregate operators in Type().
const typePrefix = "MA"

// MultiAggregate is a fused operator computing K scalar aggregates over one
// pass of its primary input.
//
// It is immutable after New and safe for concurrent Execute calls: all
// mutable state (accumulators, sparse cursors) is per execution and per task.
type MultiAggregate struct {
	kernel     Kernel
	sparseSafe bool
	kinds      []agg.Kind
	fns        []agg.Func
	opts       options
}

// New binds a generated kernel to its aggregation list.
//
// sparseSafe declares that kernel is a no-op on zero input, letting drivers
// skip implicit zeros. kinds is copied.
// Errors: ErrNilKernel, ErrNoAggregates, agg.ErrUnsupportedKind.
func New(kernel Kernel, sparseSafe bool, kinds []agg.Kind, opts ...Option) (*MultiAggregate, error) {
	if kernel == nil {
		return nil, ErrNilKernel
	}
	if len(kinds) == 0 {
		return nil, ErrNoAggregates
	}
	fns, err := agg.Functions(kinds)
	if err != nil {
		return nil, fmt.Errorf("fused.New: %w", err)
	}

	return &MultiAggregate{
		kernel:     kernel,
		sparseSafe: sparseSafe,
		kinds:      slices.Clone(kinds),
		fns:        fns,
		opts:       gatherOptions(opts...),
	}, nil
}

// AggKinds returns a copy of the aggregation list; slot k of every result
// holds the aggregate of kind AggKinds()[k].
func (op *MultiAggregate) AggKinds() []agg.Kind { return slices.Clone(op.kinds) }

// SparseSafe reports whether implicit zeros are skipped.
func (op *MultiAggregate) SparseSafe() bool { return op.sparseSafe }

// Type returns the operator's class name, "MA" + name.
func (op *MultiAggregate) Type() string { return typePrefix + op.opts.name }

// Plan validates inputs and reports how Execute would run them with k
// requested threads, without invoking the kernel.
func (op *MultiAggregate) Plan(inputs []*matrix.Block, k int) (Plan, error) {
	if len(inputs) == 0 {
		return Plan{}, fmt.Errorf("%s.Plan: %w", op.Type(), ErrNoInputs)
	}
	if err := matrix.ValidateAllNotNil(inputs); err != nil {
		return Plan{}, fmt.Errorf("%s.Plan: %w", op.Type(), err)
	}
	a := inputs[0]
	if a.Format() == matrix.FormatCompressed && !op.sparseSafe {
		return Plan{}, fmt.Errorf("%s.Plan: %w", op.Type(), ErrUnsafeCompressed)
	}

	p := Plan{Size: inputSize(inputs, op.sparseSafe), Threads: 1}
	if k > 1 && p.Size >= op.opts.threshold && a.Rows() > 0 {
		p.Parallel = true
		p.Threads = k
		p.Ranges = partitionRows(a.Rows(), k)
	} else if a.Rows() > 0 {
		p.Ranges = []RowRange{{Lo: 0, Hi: a.Rows()}}
	}

	return p, nil
}

// Execute runs the operator and returns a 1×K block holding one aggregate
// per slot (in AggKinds order), in whichever of dense or sparse
// representation suits its sparsity.
//
// inputs[0] is the primary input; inputs[1:] are side inputs handed to the
// kernel. scalars is copied once and shared read-only by all tasks. k is the
// requested thread count; inputs smaller than the parallel threshold always
// run serially.
//
// Errors: ErrNoInputs, matrix.ErrNilMatrix and ErrUnsafeCompressed before
// any kernel call; ErrExecution (wrapping the kernel error or
// ErrKernelPanic) when a task fails.
func (op *MultiAggregate) Execute(inputs []*matrix.Block, scalars []float64, k int) (*matrix.Block, error) {
	c, err := op.execute(inputs, scalars, k)
	if err != nil {
		return nil, err
	}

	out, err := matrix.NewDense(1, len(c), c)
	if err != nil {
		return nil, fmt.Errorf("%s.Execute: %w", op.Type(), err)
	}
	out.RecomputeNonZeros()
	out.ExamSparsity()

	return out, nil
}

// ExecuteSerial is Execute with k = 1.
func (op *MultiAggregate) ExecuteSerial(inputs []*matrix.Block, scalars []float64) (*matrix.Block, error) {
	return op.Execute(inputs, scalars, 1)
}

// Merge merges the 1×K result b into c in place using this operator's
// aggregation list. See MergePartialResults.
func (op *MultiAggregate) Merge(c, b *matrix.Block) error {
	return MergePartialResults(op.kinds, c, b)
}

// execute plans, runs and merges, returning the raw 1×K vector.
func (op *MultiAggregate) execute(inputs []*matrix.Block, scalars []float64, k int) ([]float64, error) {
	plan, err := op.Plan(inputs, k)
	if err != nil {
		return nil, err
	}
	a := inputs[0]
	b := prepSideInputs(inputs)
	sc := slices.Clone(scalars)

	log := op.opts.logger.With(slog.String("op", op.Type()))
	log.Debug("multi-aggregate plan",
		slog.Int("rows", a.Rows()),
		slog.Int("cols", a.Cols()),
		slog.String("format", a.Format().String()),
		slog.Bool("sparse_safe", op.sparseSafe),
		slog.Int64("size", plan.Size),
		slog.Int64("threshold", op.opts.threshold),
		slog.Bool("parallel", plan.Parallel),
		slog.Int("tasks", len(plan.Ranges)),
	)

	c := agg.Identities(op.kinds)
	if !plan.Parallel {
		for _, r := range plan.Ranges {
			if err = op.runSerial(a, b, sc, c, r); err != nil {
				log.Error("multi-aggregate failed", slog.Any("err", err))
				return nil, fmt.Errorf("%s.Execute: %w: %w", op.Type(), ErrExecution, err)
			}
		}

		return c, nil
	}

	partials, err := op.runTasks(a, b, sc, plan.Ranges, plan.Threads)
	if err != nil {
		log.Error("multi-aggregate failed", slog.Any("err", err))
		return nil, fmt.Errorf("%s.Execute: %w: %w", op.Type(), ErrExecution, err)
	}
	aggregatePartials(op.fns, c, partials)

	return c, nil
}

// runSerial accumulates range r directly into c, on the calling goroutine.
func (op *MultiAggregate) runSerial(a *matrix.Block, b []matrix.SideInput, scalars, c []float64, r RowRange) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("rows [%d,%d): %w: %v", r.Lo, r.Hi, ErrKernelPanic, p)
		}
	}()

	return op.executeRange(a, localSideInputs(b), scalars, c, r.Lo, r.Hi)
}
