/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/usnjournal/pkg/config"
)

func newInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a configuration file with default settings.

Examples:
  usnjournal init
  usnjournal init --config ./usnjournal.yaml --volume D: --force`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSession: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			volumeName, _ := cmd.Flags().GetString("volume")
			force, _ := cmd.Flags().GetBool("force")

			if configPath == "" {
				configPath = config.GetDefaultConfigPath()
			}

			if config.ConfigExists(configPath) && !force {
				cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", configPath)
				return nil
			}

			return writeDefaultConfig(configPath, volumeName, cmd)
		},
	}

	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return initCmd
}

func writeDefaultConfig(configPath, volumeName string, cmd *cobra.Command) error {
	cfg := config.DefaultConfig()
	if volumeName != "" {
		cfg.Volume = volumeName
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := config.SaveConfig(cfg, configPath); err != nil {
		return err
	}

	cmd.Printf("Wrote config to %s\n", configPath)
	cmd.Printf("Quote drive letters when editing it, e.g. volume: \"D:\"\n")
	return nil
}
