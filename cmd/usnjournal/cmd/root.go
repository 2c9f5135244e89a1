/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/common/expfmt"
	"github.com/segmentio/ksuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ssargent/usnjournal/pkg/config"
	"github.com/ssargent/usnjournal/pkg/di"
	"github.com/ssargent/usnjournal/pkg/journal"
)

// skipSession marks commands that run without loading configuration.
const skipSession = "skip-session"

var container *di.Container

// SetContainer injects the dependency container used by all commands
func SetContainer(c *di.Container) {
	container = c
}

type sessionKey struct{}

// session is the per-invocation state shared by subcommands.
type session struct {
	runID  ksuid.KSUID
	config *config.Config
	log    *logrus.Entry
}

func sessionFrom(cmd *cobra.Command) (*session, error) {
	s, ok := cmd.Context().Value(sessionKey{}).(*session)
	if !ok {
		return nil, fmt.Errorf("session not found in context")
	}
	return s, nil
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "usnjournal",
		Short: "Query and read a volume's USN change journal",
		Long: `usnjournal issues single change journal control calls against a volume:
query the journal descriptor, or read one batch of raw change records
starting at a cursor.

Opening a volume requires administrator rights on Windows.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSession] == "true" {
				return nil
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			cmd.SetContext(context.WithValue(cmd.Context(), sessionKey{}, s))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			printMetrics, _ := cmd.Flags().GetBool("metrics")
			if !printMetrics || container == nil {
				return nil
			}
			return writeMetrics(cmd)
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default "+config.GetDefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringP("volume", "v", "", "Volume to open, e.g. C: (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json (overrides config)")
	rootCmd.PersistentFlags().Bool("metrics", false, "Print control call metrics after the command")

	rootCmd.AddCommand(
		newInitCmd(),
		newQueryCmd(),
		newReadCmd(),
		newReasonsCmd(),
	)

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	runID := ksuid.New()
	return &session{
		runID:  runID,
		config: cfg,
		log: logger.WithFields(logrus.Fields{
			"run_id": runID.String(),
			"volume": cfg.Volume,
		}),
	}, nil
}

// resolveConfig loads the config file named by --config, or the default
// config file if one exists, and applies flag overrides.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg := config.DefaultConfig()
	switch {
	case configPath != "":
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case config.ConfigExists(config.GetDefaultConfigPath()):
		loaded, err := config.LoadConfig(config.GetDefaultConfigPath())
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if v, _ := cmd.Flags().GetString("volume"); v != "" {
		cfg.Volume = v
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.Logging.Level = l
	}
	if f, _ := cmd.Flags().GetString("log-format"); f != "" {
		cfg.Logging.Format = f
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// openDevice opens the configured volume through the container and wraps it
// with metrics and logging.
func openDevice(s *session) (journal.Device, func(), error) {
	if container == nil {
		return nil, nil, fmt.Errorf("dependency container not initialized")
	}

	dev, err := container.GetDeviceOpener()(s.config.Volume)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open volume %s: %w", s.config.Volume, err)
	}

	closeFn := func() {
		if err := dev.Close(); err != nil {
			s.log.WithError(err).Warn("failed to close volume")
		}
	}

	return journal.NewInstrumentedDevice(dev, container.GetMetrics(), s.log), closeFn, nil
}

func writeMetrics(cmd *cobra.Command) error {
	families, err := container.GetRegistry().Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	return nil
}
