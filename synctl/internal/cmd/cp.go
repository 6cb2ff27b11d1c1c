package cmd

import (
	"github.com/spf13/cobra"

	"github.com/c2fo/synfs"
)

func newCpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cp srcPath dstPath",
		Short: "Copy an entity, including any subtree under it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(session *synfs.Session) error {
				return session.Copy(cmd.Context(), args[0], args[1])
			})
		},
	}
}
