/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/usnjournal/pkg/usn"
)

func newReasonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "reasons",
		Short:       "List the change reasons accepted by --reasons",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSession: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, name := range usn.ReasonNames() {
				r, _ := usn.LookupReason(name)
				fmt.Fprintf(w, "0x%08x  %s\n", uint32(r), name)
			}
			fmt.Fprintf(w, "0x%08x  %s\n", uint32(usn.ReasonAll), "all")
		},
	}
}
