/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ssargent/usnjournal/pkg/codec"
	"github.com/ssargent/usnjournal/pkg/config"
	"github.com/ssargent/usnjournal/pkg/journal"
	"github.com/ssargent/usnjournal/pkg/usn"
)

func newReadCmd() *cobra.Command {
	readCmd := &cobra.Command{
		Use:   "read",
		Short: "Read one batch of raw change records",
		Long: `Read one batch of raw change records from the volume's change journal.

The journal descriptor is queried first. Reading starts at the journal's first
USN unless --start-usn is given. The next cursor is printed so the following
batch can be requested with --start-usn.

Example:
  usnjournal read --volume C:
  usnjournal read --volume C: --start-usn 123456 --reasons file-create,file-delete --hex`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd)
			if err != nil {
				return err
			}

			bufferSize := s.config.BufferSize
			if cmd.Flags().Changed("buffer-size") {
				bufferSize, _ = cmd.Flags().GetInt("buffer-size")
				if bufferSize < config.MinBufferSize {
					return fmt.Errorf("--buffer-size must be at least %d", config.MinBufferSize)
				}
			}

			mask, err := s.config.ReasonMask()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("reasons") {
				names, _ := cmd.Flags().GetStringSlice("reasons")
				if mask, err = usn.ParseReasons(names); err != nil {
					return err
				}
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

			req := s.config.Read.ApplyTo(usn.NewReadRequest(desc), mask)
			if cmd.Flags().Changed("start-usn") {
				start, _ := cmd.Flags().GetUint64("start-usn")
				req = req.WithStartUSN(usn.USN(start))
			}

			s.log.WithFields(logrus.Fields{
				"journal_id":  desc.Journal().JournalID,
				"start_usn":   uint64(req.StartUSN),
				"reason_mask": req.ReasonMask.String(),
				"request":     req.Version.String(),
			}).Debug("reading change journal")

			buf := make([]byte, bufferSize)
			batch, err := journal.ReadBatch(dev, req, buf)
			if err != nil {
				return describeFailure(err)
			}

			next, records, err := codec.SplitBatch(batch)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Journal ID:    0x%016x\n", req.JournalID)
			fmt.Fprintf(w, "Start USN:     %d\n", req.StartUSN)
			fmt.Fprintf(w, "Next USN:      %d\n", next)
			fmt.Fprintf(w, "Record bytes:  %d\n", len(records))
			if next >= desc.Journal().NextUSN {
				fmt.Fprintf(w, "Caught up with the journal\n")
			}

			if dump, _ := cmd.Flags().GetBool("hex"); dump && len(records) > 0 {
				fmt.Fprint(w, hex.Dump(records))
			}

			return nil
		},
	}

	readCmd.Flags().Uint64("start-usn", 0, "USN to start reading from (default: the journal's first USN)")
	readCmd.Flags().StringSlice("reasons", nil, "Reasons to include, e.g. file-create,file-delete (overrides config)")
	readCmd.Flags().Int("buffer-size", 0, "Read buffer size in bytes (overrides config)")
	readCmd.Flags().Bool("hex", false, "Hex dump the raw record bytes")

	return readCmd
}
