package builder

import (
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/gain"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/params"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/tasks"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

type (
	TaskRunner = tasks.Runner
	TaskName   = tasks.Name
	TaskResult = tasks.Result
)

const (
	TaskGeneral     = tasks.General
	TaskLineProfile = tasks.LineProfile
	TaskEnhancement = tasks.Enhancement
)

// ParseTaskNames splits a comma separated task list; empty means all tasks.
func ParseTaskNames(list string) ([]TaskName, error) {
	return tasks.ParseNames(list)
}

// NewTaskRunner creates a runner around an engine factory.
func NewTaskRunner(factory types.EngineFactory, options ...types.Option[*tasks.Runner]) *tasks.Runner {
	return tasks.NewRunner(factory, options...)
}

// TaskRunnerWithLogger attaches loggers to the runner and its components.
func TaskRunnerWithLogger(l ...types.Logger) types.Option[*tasks.Runner] {
	return tasks.WithLogger(l...)
}

// TaskRunnerWithSensor attaches sensors to the runner and its components.
func TaskRunnerWithSensor(s ...types.Sensor) types.Option[*tasks.Runner] {
	return tasks.WithSensor(s...)
}

// TaskRunnerWithMeter times tasks and reports after the run.
func TaskRunnerWithMeter(m types.Meter) types.Option[*tasks.Runner] {
	return tasks.WithMeter(m)
}

// TaskRunnerWithUploader uploads every file a successful task writes.
func TaskRunnerWithUploader(u tasks.Uploader) types.Option[*tasks.Runner] {
	return tasks.WithUploader(u)
}

// TaskRunnerWithSampler replaces the default sampler.
func TaskRunnerWithSampler(s types.FieldSampler) types.Option[*tasks.Runner] {
	return tasks.WithSampler(s)
}

// TaskRunnerWithGainEstimator replaces the default estimator.
func TaskRunnerWithGainEstimator(e *gain.Estimator) types.Option[*tasks.Runner] {
	return tasks.WithEstimator(e)
}

// TaskRunnerWithSinkFactory replaces the default sink factory.
func TaskRunnerWithSinkFactory(f tasks.SinkFactory) types.Option[*tasks.Runner] {
	return tasks.WithSinkFactory(f)
}

// TaskRunnerWithResetFunc replaces the reset used by the enhancement task.
func TaskRunnerWithResetFunc(f func(params.Config) params.Config) types.Option[*tasks.Runner] {
	return tasks.WithResetFunc(f)
}

// TaskRunnerWithLineProfileName names the line-profile bundle.
func TaskRunnerWithLineProfileName(name string) types.Option[*tasks.Runner] {
	return tasks.WithLineProfileName(name)
}

// TaskRunnerOption configures a runner.
type TaskRunnerOption = types.Option[*tasks.Runner]
