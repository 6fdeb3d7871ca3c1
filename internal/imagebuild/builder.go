package imagebuild

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var (
	ErrNoOutput = errors.New("no output: set a publish reference or an export path")
	ErrNoResult = errors.New("builder returned no result")
)

// Output says where a built image goes. At least one field must be set.
type Output struct {
	Publish string
	Export  string
}

func (o Output) Validate() error {
	if o.Publish == "" && o.Export == "" {
		return ErrNoOutput
	}

	return nil
}

type Result struct {
	Reference     string
	ExportPath    string
	ContextDigest string
	Ports         []Port
	DefaultArgs   []string
	Duration      time.Duration
}

// Builder applies a plan to the build context in dir. A failing step aborts
// the build and its error is returned as is.
type Builder interface {
	Build(ctx context.Context, dir string, plan *Plan, out Output) (*Result, error)
}

type HistoryRecorder interface {
	Record(ctx context.Context, run Run) error
}

// Runner checks inputs, builds and records each build run.
type Runner struct {
	log     *slog.Logger
	builder Builder
	history HistoryRecorder
}

func NewRunner(log *slog.Logger, builder Builder, history HistoryRecorder) *Runner {
	return &Runner{
		log:     log,
		builder: builder,
		history: history,
	}
}

func (r *Runner) Run(ctx context.Context, dir string, spec Spec, out Output) (*Result, error) {
	if err := out.Validate(); err != nil {
		return nil, err
	}

	plan, err := NewPlan(spec)
	if err != nil {
		return nil, err
	}

	digest, err := ContextDigest(dir, spec)
	if err != nil {
		return nil, err
	}

	log := r.log.With(
		slog.String("layout", string(spec.Layout)),
		slog.String("digest", digest),
	)
	log.InfoContext(ctx, "building image", slog.String("base", spec.BaseImage))

	start := time.Now()
	result, buildErr := r.builder.Build(ctx, dir, plan, out)
	elapsed := time.Since(start)

	run := Run{
		Layout:        spec.Layout,
		ContextDigest: digest,
		StartedAt:     start,
		Duration:      elapsed,
		Status:        RunSucceeded,
	}

	if buildErr == nil && result == nil {
		buildErr = ErrNoResult
	}

	if buildErr != nil {
		run.Status = RunFailed
		run.Error = buildErr.Error()
	} else {
		run.Reference = result.Reference
		if run.Reference == "" {
			run.Reference = result.ExportPath
		}
	}

	if r.history != nil {
		if err := r.history.Record(ctx, run); err != nil {
			log.WarnContext(ctx, "failed to record build", slog.String("err", err.Error()))
		}
	}

	if buildErr != nil {
		log.ErrorContext(ctx, "build failed",
			slog.String("err", buildErr.Error()),
			slog.Duration("duration", elapsed),
		)
		return nil, fmt.Errorf("build failed: %w", buildErr)
	}

	result.ContextDigest = digest
	result.Duration = elapsed

	log.InfoContext(ctx, "image built",
		slog.String("reference", run.Reference),
		slog.Duration("duration", elapsed),
	)

	return result, nil
}
