package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <design-file>",
		Short: "Validate a design and report the architecture chosen for every instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := targetOptions(cmd, args[0])
			if err != nil {
				return err
			}
			_, err = c.app.Check(cmd.Context(), target)
			return err
		},
	}
	addTargetFlags(cmd)
	return cmd
}
