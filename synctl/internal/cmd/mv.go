package cmd

import (
	"github.com/spf13/cobra"

	"github.com/c2fo/synfs"
)

func newMvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv srcPath dstPath",
		Short: "Move or rename an entity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(session *synfs.Session) error {
				return session.Move(cmd.Context(), args[0], args[1])
			})
		},
	}
}
