// Package tasks runs the fixed simulation tasks in sequence.
//
// Every task receives the configuration it runs with and returns the one the
// next task should see. A failing task writes nothing; later tasks still run.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/gain"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/params"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/sampler"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/sink"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// DefaultLineProfileName names the line-profile bundle.
const DefaultLineProfileName = "animation"

// Uploader ships written artifacts off the machine.
type Uploader interface {
	UploadAll(ctx context.Context, files []string) ([]string, error)
}

// SinkFactory builds the sink for an output configuration.
type SinkFactory func(cfg types.OutputConfig, options ...types.Option[types.ResultSink]) (types.ResultSink, error)

// Result is the outcome of one task.
type Result struct {
	Task     Name
	Paths    []string
	Keys     []string
	Duration time.Duration
	Err      error
}

// Runner owns the collaborators shared by every task.
type Runner struct {
	componentMetadata types.ComponentMetadata

	factory   types.EngineFactory
	sampler   types.FieldSampler
	estimator *gain.Estimator
	newSink   SinkFactory
	uploader  Uploader
	meter     types.Meter
	reset     func(params.Config) params.Config

	lineProfileName string

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorsLock sync.Mutex
}

// NewRunner builds a runner around an engine factory.
func NewRunner(factory types.EngineFactory, options ...types.Option[*Runner]) *Runner {
	r := &Runner{
		componentMetadata: types.ComponentMetadata{ID: uuid.NewString(), Type: "TASK_RUNNER"},
		factory:           factory,
		newSink:           sink.New,
		reset:             params.Reset,
		lineProfileName:   DefaultLineProfileName,
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.sampler == nil {
		r.sampler = sampler.NewFieldSampler(
			sampler.WithLogger(r.snapshotLoggers()...),
			sampler.WithSensor(r.snapshotSensors()...),
		)
	}
	if r.estimator == nil {
		r.estimator = gain.NewEstimator(gain.WithLogger(r.snapshotLoggers()...))
	}
	return r
}

// Run executes names in order, threading the configuration through. It stops
// early only when ctx is done.
func (r *Runner) Run(ctx context.Context, cfg params.Config, names ...Name) ([]Result, params.Config) {
	if len(names) == 0 {
		names = DefaultOrder
	}
	results := make([]Result, 0, len(names))
	for _, n := range names {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Task: n, Err: err})
			break
		}
		var res Result
		cfg, res = r.RunTask(ctx, n, cfg)
		results = append(results, res)
	}
	if r.meter != nil {
		r.meter.ReportData()
	}
	return results, cfg
}

// RunTask runs a single task. On failure the input configuration is returned
// unchanged.
func (r *Runner) RunTask(ctx context.Context, name Name, cfg params.Config) (params.Config, Result) {
	res := Result{Task: name}
	timer := "task_" + string(name)
	if r.meter != nil {
		r.meter.StartTimer(timer)
	}
	start := time.Now()

	r.NotifyLoggers(types.InfoLevel, "Task started",
		"component", r.componentMetadata,
		"event", "RunTask",
		"result", "PENDING",
		"task", string(name),
	)

	next, paths, err := r.dispatch(ctx, name, cfg)
	if err == nil && r.uploader != nil && len(paths) > 0 {
		res.Keys, err = r.uploader.UploadAll(ctx, paths)
		if err != nil {
			err = fmt.Errorf("upload: %w", err)
		}
	}
	res.Duration = time.Since(start)
	res.Paths = paths

	if r.meter != nil {
		r.meter.StopTimer(timer)
		if serr := r.meter.SampleResources(); serr != nil {
			r.NotifyLoggers(types.DebugLevel, "Resource sample failed",
				"component", r.componentMetadata,
				"event", "SampleResources",
				"error", serr,
			)
		}
	}

	if err != nil {
		res.Err = err
		level := types.ErrorLevel
		result := "FAILURE"
		if errors.Is(err, types.ErrNoData) {
			level = types.WarnLevel
			result = "NO_DATA"
		}
		r.NotifyLoggers(level, "Task failed",
			"component", r.componentMetadata,
			"event", "RunTask",
			"result", result,
			"task", string(name),
			"error", err,
		)
		return cfg, res
	}

	r.NotifyLoggers(types.InfoLevel, "Task finished",
		"component", r.componentMetadata,
		"event", "RunTask",
		"result", "SUCCESS",
		"task", string(name),
		"files", len(paths),
		"duration", res.Duration,
	)
	return next, res
}

func (r *Runner) dispatch(ctx context.Context, name Name, cfg params.Config) (params.Config, []string, error) {
	if r.factory == nil {
		return cfg, nil, &types.ConfigError{Field: "engine", Reason: "no engine factory"}
	}
	switch name {
	case General:
		return r.general(ctx, cfg)
	case LineProfile:
		return r.lineProfile(ctx, cfg)
	case Enhancement:
		return r.enhancement(ctx, cfg)
	default:
		return cfg, nil, &types.ConfigError{Field: "tasks", Reason: fmt.Sprintf("unknown task %q", name)}
	}
}

func (r *Runner) sinkFor(cfg params.Config) (types.ResultSink, error) {
	return r.newSink(cfg.Output,
		sink.WithLogger(r.snapshotLoggers()...),
		sink.WithSensor(r.snapshotSensors()...),
	)
}

func (r *Runner) engine(sim types.SimulationConfig) (types.Engine, error) {
	e, err := r.factory(sim)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	return e, nil
}

// writeAll writes bundles in order. If any write fails, files already
// written by this call are removed, along with extra (files the task wrote
// before its bundles).
func (r *Runner) writeAll(ctx context.Context, s types.ResultSink, extra []string, bundles ...types.Bundle) ([]string, error) {
	paths := append([]string(nil), extra...)
	for _, b := range bundles {
		written, err := s.Write(ctx, b)
		paths = append(paths, written...)
		if err != nil {
			r.discard(paths)
			return nil, err
		}
	}
	return paths, nil
}

func (r *Runner) discard(paths []string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			r.NotifyLoggers(types.WarnLevel, "Could not remove partial artifact",
				"component", r.componentMetadata,
				"event", "Discard",
				"result", "FAILURE",
				"path", p,
				"error", err,
			)
		}
	}
}
