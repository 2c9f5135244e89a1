/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/usnjournal/pkg/journal"
)

func newQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Print the volume's change journal descriptor",
		Long: `Query the change journal descriptor of a volume.

Example:
  usnjournal query --volume C:
  usnjournal query --volume D: --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			if output != "text" && output != "json" {
				return fmt.Errorf("--output must be text or json, got %q", output)
			}

			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}

			dev, closeFn, err := openDevice(s)
			if err != nil {
				return err
			}
			defer closeFn()

			desc, err := journal.QueryDescriptor(dev)
			if err != nil {
				return describeFailure(err)
			}

			s.log.WithField("journal_id", desc.Journal().JournalID).Debug("queried journal descriptor")

			return printDescriptor(cmd.OutOrStdout(), desc, output)
		},
	}

	queryCmd.Flags().StringP("output", "o", "text", "Output format: text or json")

	return queryCmd
}
