package cmd

import (
	"github.com/spf13/cobra"

	"github.com/c2fo/synfs"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm path",
		Short: "Delete an entity, including any subtree under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(session *synfs.Session) error {
				return session.Remove(cmd.Context(), args[0])
			})
		},
	}
}
