package commands

import (
	"io"

	"github.com/NyanCAD/amscrcuits/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newNetlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "netlist <design-file>",
		Short: "Synthesize netlists for a design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := targetOptions(cmd, args[0])
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			force, _ := cmd.Flags().GetBool("force")
			cacheDir, _ := cmd.Flags().GetString("cache-dir")

			results, err := c.app.Netlist(cmd.Context(), app.NetlistOptions{
				TargetOptions: target,
				OutputDir:     out,
				CacheDir:      cacheDir,
				Force:         force,
			})
			if err != nil {
				return err
			}
			if out == "" {
				for _, res := range results {
					if _, err := io.WriteString(cmd.OutOrStdout(), res.Record.Text); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	addTargetFlags(cmd)
	cmd.Flags().StringP("out", "o", "", "Output directory (prints to stdout when empty)")
	cmd.Flags().BoolP("force", "f", false, "Synthesize even when a cached netlist exists")
	return cmd
}
