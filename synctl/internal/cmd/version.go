package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// build is populated at release time via
// -ldflags "-X github.com/c2fo/synfs/synctl/internal/cmd.build=v1.2.3".
var build string

// Version reports the binary's release version.
func Version() string {
	if build == "" {
		return "v0.0.0-dev"
	}
	return build
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the synctl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "synctl "+Version())
		},
	}
}
