// Package commands provides the CLI commands for the monads tool.
package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"justisgipson/monads/internal/config"
)

var (
	logLevel  string
	logFormat string
	verbose   bool

	// logger is set up by the root PersistentPreRunE before any command runs.
	logger *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "monads",
	Short: "Pointed, Functor and Monad on Identity and Pair",
	Long: `monads demonstrates the Pointed, Functor and Monad capabilities
on two value containers, Identity and Pair.

Usage:
  monads                 Print the demonstration (same as "monads demo")
  monads demo            Print the demonstration
  monads laws            Check the container laws over sample values
  monads version         Print version`,
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runDemo,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if verbose {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger = cfg.NewLogger()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.WithFields(logrus.Fields{
		"command":    cmd.Name(),
		"log-level":  cfg.LogLevel,
		"log-format": cfg.LogFormat,
	}).Debug("configured")
	return nil
}

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(lawsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides "+config.EnvLogLevel+")")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format, text or json (overrides "+config.EnvLogFormat+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Shortcut for --log-level=debug")
}
