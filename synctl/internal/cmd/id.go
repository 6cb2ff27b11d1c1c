package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c2fo/synfs"
)

func newIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id path",
		Short: "Resolve a path to its entity id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(session *synfs.Session) error {
				id, err := session.ResolveID(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	}
}
