package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/topolab/config"
	"github.com/katalvlaran/topolab/menu"
	"github.com/katalvlaran/topolab/telemetry"
)

// app carries the process-scoped handles shared by every subcommand.
type app struct {
	in       io.Reader
	out, err io.Writer

	flagConfig      string
	flagLogLevel    string
	flagOutputDir   string
	flagSeed        int64
	flagMetricsFile string

	cfg *config.Config
	log *logrus.Logger
	reg *prometheus.Registry
	rec *telemetry.Recorder
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{in: in, out: out, err: errOut}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "topolab",
		Short:         "Network topology builder, analyser and failure simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.flushMetrics()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMenu(cmd.Context())
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.err)

	f := root.PersistentFlags()
	f.StringVar(&a.flagConfig, "config", "", "config file (default ./"+config.DefaultFile+" when present)")
	f.StringVar(&a.flagLogLevel, "log-level", "", "log level: trace|debug|info|warn|error (env: "+config.EnvLogLevel+")")
	f.StringVar(&a.flagOutputDir, "output-dir", "", "directory for exported files (env: "+config.EnvOutputDir+")")
	f.Int64Var(&a.flagSeed, "seed", 0, "seed for partial-mesh randomness, 0 = time-seeded (env: "+config.EnvSeed+")")
	f.StringVar(&a.flagMetricsFile, "metrics-file", "", "write Prometheus metrics to this textfile on exit")

	root.AddCommand(
		newBuildCmd(a),
		newCompareCmd(a),
		newFailNodeCmd(a),
		newFailLinkCmd(a),
		newCheckLinksCmd(a),
		newPipelineCmd(a),
	)
	return root
}

// setup resolves configuration (file, env, then changed flags) and creates
// the logger and metrics registry.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flagLogLevel
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = a.flagOutputDir
	}
	if flags.Changed("seed") {
		cfg.Seed = a.flagSeed
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = a.flagMetricsFile
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	if a.log, err = cfg.NewLogger(a.err); err != nil {
		return err
	}
	a.cfg = cfg
	a.reg = prometheus.NewRegistry()
	a.rec = telemetry.NewRecorder(a.reg)
	a.log.WithFields(logrus.Fields{"command": cmd.Name(), "seed": cfg.Seed}).Debug("topolab starting")

	return nil
}

func (a *app) flushMetrics() error {
	if a.cfg == nil || a.cfg.MetricsFile == "" {
		return nil
	}
	if err := telemetry.WriteTextfile(a.cfg.MetricsFile, a.reg); err != nil {
		return err
	}
	a.log.WithField("path", a.cfg.MetricsFile).Debug("metrics written")
	return nil
}

func (a *app) session() *menu.Session {
	return &menu.Session{
		In:       a.in,
		Out:      a.out,
		Log:      a.log,
		Config:   a.cfg,
		Recorder: a.rec,
	}
}

// runMenu runs the interactive session; an interrupt ends it cleanly.
func (a *app) runMenu(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("menu: %v", r)
			}
		}()
		done <- a.session().Run(ctx)
	}()

	select {
	case err := <-done:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case <-ctx.Done():
		fmt.Fprintln(a.out, "\nExiting...")
		return nil
	}
}
