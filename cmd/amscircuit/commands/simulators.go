package commands

import (
	"fmt"
	"strings"

	"github.com/NyanCAD/amscrcuits/internal/engine/netlist"
	"github.com/spf13/cobra"
)

func (c *CLI) newSimulatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulators",
		Short: "List supported simulators and the code dialects they accept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, sim := range netlist.Simulators() {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-8s %s\n", sim.Name(), sim.Family(), strings.Join(sim.Dialects(), " > "))
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
