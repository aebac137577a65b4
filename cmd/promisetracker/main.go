// Package main implements the promisetracker CLI, a thin cobra front end
// over internal/tracker, internal/render, internal/diagram, internal/graph,
// and internal/schema. Modeled on the teacher's cmd/nerd/main.go: a single
// rootCmd with global flags wired in init(), one file per subcommand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"promisetracker/internal/config"
	"promisetracker/internal/ptlog"
)

var (
	verbose    bool
	configPath string

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "promisetracker",
	Short: "promisetracker resolves a promise network of agents, behaviors, and conditions",
	Long: `promisetracker loads Agent/SuperAgent declarations from YAML files and
resolves "who (if anyone) can provide this behavior" against the declared
network, rendering the result as text, a Mermaid sequence diagram, or a
force-directed graph.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}

		zapCfg := zap.NewProductionConfig()
		if level == "debug" {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if err := ptlog.Init(level, cfg.Logging.Categories); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize structured logging: %v\n", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		ptlog.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config YAML (default: built-in defaults)")

	rootCmd.AddCommand(
		resolveCmd,
		whoProvidesCmd,
		checkUnsatisfiedCmd,
		diagramCmd,
		graphCmd,
		schemaCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
