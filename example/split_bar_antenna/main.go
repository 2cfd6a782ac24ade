package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/builder"
)

type cliOptions struct {
	configPath string
	tasks      string
	simName    string
}

// parseFlags loads dotenv first: SPLITBAR_CONFIG and SPLITBAR_TASKS set
// there seed the flag defaults.
func parseFlags(dotenv string, args []string) (cliOptions, error) {
	builder.LoadDotEnv(dotenv)

	var opts cliOptions
	fs := flag.NewFlagSet("split_bar_antenna", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", builder.EnvOr(builder.EnvPrefix+"CONFIG", ""), "YAML configuration file (defaults when empty)")
	fs.StringVar(&opts.tasks, "tasks", builder.EnvOr(builder.EnvPrefix+"TASKS", ""), "comma separated tasks: general,line_profile,enhancement")
	fs.StringVar(&opts.simName, "sim-name", "", "override the simulation name")
	err := fs.Parse(args)
	return opts, err
}

func main() {
	opts, err := parseFlags(".env", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	cfg, err := builder.LoadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if opts.simName != "" {
		cfg.Output.SimName = opts.simName
	}
	names, err := builder.ParseTaskNames(opts.tasks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tasks: %v\n", err)
		os.Exit(2)
	}

	runID := uuid.NewString()
	logger, err := builder.NewLoggerFromConfig(cfg.Log, runID, cfg.Output.SimName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}
	defer logger.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	meter := builder.NewMeter(builder.MeterWithLogger(logger), builder.MeterWithComponentMetadata("run", runID))
	sensor := builder.NewSensor(builder.SensorWithMeter(meter), builder.SensorWithLogger(logger))

	runnerOpts := []builder.TaskRunnerOption{
		builder.TaskRunnerWithLogger(logger),
		builder.TaskRunnerWithSensor(sensor),
		builder.TaskRunnerWithMeter(meter),
	}
	if cfg.Upload.Enabled() {
		up, err := builder.NewS3UploaderFromConfig(ctx, cfg,
			builder.S3UploaderWithLogger(logger),
			builder.S3UploaderWithSensor(sensor),
		)
		if err != nil {
			logger.Error("S3 uploader unavailable", "event", "Startup", "error", err)
			_ = logger.Flush()
			os.Exit(1)
		}
		runnerOpts = append(runnerOpts, builder.TaskRunnerWithUploader(up))
	}

	runner := builder.NewTaskRunner(builder.NewEngineFactory(builder.EngineWithLogger(logger)), runnerOpts...)
	results, _ := runner.Run(ctx, cfg, names...)

	failed := 0
	for _, res := range results {
		status := "ok"
		if res.Err != nil {
			status = res.Err.Error()
			failed++
		}
		fmt.Printf("%-14s %10s  %d file(s)  %s\n", res.Task, res.Duration.Round(time.Millisecond), len(res.Paths), status)
	}
	if failed > 0 {
		_ = logger.Flush()
		os.Exit(1)
	}
}
