package commands

import (
	"github.com/spf13/cobra"
)

func postOnlyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post-only <service-id>",
		Short: "Request a post-only service instead of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := session.ChoosePostOnly(args[0])
			if err != nil {
				return err
			}
			printEstimate(cmd.OutOrStdout(), &est)
			return nil
		},
	}
}
