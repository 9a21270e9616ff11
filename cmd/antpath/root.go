// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antpath/config"
	"github.com/katalvlaran/antpath/logging"
	"github.com/katalvlaran/antpath/store"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath  string
	verbose     bool
	logLevel    string
	logFormat   string
	storeKind   string
	storePath   string
	metricsFile string

	// filled in by PersistentPreRunE
	cfg    config.Config
	logger *logrus.Logger
}

func newRootCmd(ctx context.Context, version string) *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "antpath",
		Short:         "Find cheap routes through multi-modal transport networks with ant colonies.",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}
	rootCmd.SetContext(ctx)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML or JSON config file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug level)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "", "log format (auto, text, json)")
	pf.StringVar(&opts.storeKind, "store", "", "run history backend (memory, sqlite)")
	pf.StringVar(&opts.storePath, "store-path", "", "sqlite database path")
	pf.StringVar(&opts.metricsFile, "metrics-file", "", "write prometheus metrics to this file after the command")

	rootCmd.AddCommand(newSolveCmd(opts), newGenerateCmd(opts), newRunsCmd(opts))

	return rootCmd
}

// setup loads the configuration, applies flag overrides and installs the logger.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if o.verbose {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if flags.Changed("store") {
		cfg.Store.Kind = o.storeKind
	}
	if flags.Changed("store-path") {
		cfg.Store.Path = o.storePath
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.File = o.metricsFile
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.logger = logger
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

	return nil
}

// openStore initializes the configured run store.
func (o *rootOptions) openStore(ctx context.Context) (store.Store, error) {
	s, err := store.NewStore(o.cfg.Store.Kind, o.cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	if err = s.Init(ctx); err != nil {
		return nil, fmt.Errorf("open %s store: %w", o.cfg.Store.Kind, err)
	}

	return s, nil
}

// writeMetrics dumps the default registry when a metrics file is configured.
func (o *rootOptions) writeMetrics() error {
	if o.cfg.Metrics.File == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(o.cfg.Metrics.File, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	o.logger.WithField("file", o.cfg.Metrics.File).Debug("metrics written")

	return nil
}
