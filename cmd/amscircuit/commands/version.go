package commands

import (
	"fmt"

	"github.com/NyanCAD/amscrcuits/internal/build"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "amscircuit version %s\n", build.Version)
		},
	}
}
