package cmd

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/c2fo/synfs"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get remotePath [localPath]",
		Short: "Download a file or folder tree",
		Long: `get downloads the entity at remotePath to localPath, defaulting to the
remote base name in the working directory. The local target must not exist
yet; folders download recursively.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			remotePath := args[0]
			localPath := path.Base(remotePath)
			if len(args) == 2 {
				localPath = args[1]
			}
			return withSession(func(session *synfs.Session) error {
				if err := session.Download(cmd.Context(), remotePath, localPath); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), localPath)
				return nil
			})
		},
	}
}
