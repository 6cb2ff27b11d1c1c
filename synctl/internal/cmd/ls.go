package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/c2fo/synfs"
)

var (
	folderColor  = color.New(color.FgBlue, color.Bold)
	projectColor = color.New(color.FgCyan, color.Bold)
)

func newLsCmd() *cobra.Command {
	long := false
	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List the children of a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			return withSession(func(session *synfs.Session) error {
				if !long {
					names, err := session.List(cmd.Context(), target)
					if err != nil {
						return err
					}
					for _, name := range names {
						fmt.Fprintln(cmd.OutOrStdout(), name)
					}
					return nil
				}

				children, err := session.Children(cmd.Context(), target)
				if err != nil {
					return err
				}
				for _, child := range children {
					fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-7s %s\n", child.ID, typeLabel(child), paint(child))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "long format: id, type, name")
	return cmd
}

func typeLabel(e synfs.Entity) string {
	switch e.Type {
	case synfs.TypeProject:
		return "project"
	case synfs.TypeFolder:
		return "folder"
	default:
		return "file"
	}
}

// paint colors container names the way ls colors directories. Only the name
// is colored so the fixed-width columns before it stay aligned.
func paint(e synfs.Entity) string {
	switch e.Type {
	case synfs.TypeProject:
		return projectColor.Sprint(e.Name)
	case synfs.TypeFolder:
		return folderColor.Sprint(e.Name)
	default:
		return e.Name
	}
}
