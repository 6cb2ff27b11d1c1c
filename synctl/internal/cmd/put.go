package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/c2fo/synfs"
	"github.com/c2fo/synfs/options"
	"github.com/c2fo/synfs/options/upload"
)

func newPutCmd() *cobra.Command {
	includeHidden := false
	cmd := &cobra.Command{
		Use:   "put localPath [remotePath]",
		Short: "Upload a local file or directory tree",
		Long: `put uploads the local file or directory at localPath to remotePath,
defaulting to the local base name under the project root. The remote
containing folder must already exist; directories upload recursively.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			localPath := args[0]
			remotePath := filepath.Base(localPath)
			if len(args) == 2 {
				remotePath = args[1]
			}
			return withSession(func(session *synfs.Session) error {
				var opts []options.UploadOption
				if includeHidden {
					opts = append(opts, upload.WithIncludeHidden())
				}
				id, err := session.Upload(cmd.Context(), localPath, remotePath, opts...)
				if err != nil {
					return err
				}
				if id == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "skipped hidden file %s\n", localPath)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&includeHidden, "include-hidden", false, "upload dotfiles too")
	return cmd
}
