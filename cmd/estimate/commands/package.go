package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cerberus/services/estimate"
)

func packageCmd() *cobra.Command {
	var (
		addons   []string
		rushDays int
	)
	cmd := &cobra.Command{
		Use:   "package [package-id]",
		Short: "Pick a package, add-ons and rush days",
		Long: "Updates the saved estimate. Parts not given on the command line " +
			"(package, --addon, --rush) keep their saved values.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prev, err := session.Current()
			if err != nil {
				return err
			}
			sel := estimate.SelectionFrom(prev)
			if len(args) == 1 {
				sel.PackageID = args[0]
				if _, ok := session.Catalog.Package(sel.PackageID); !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: unknown package %q ignored\n", sel.PackageID)
				}
			}
			if cmd.Flags().Changed("addon") {
				sel.AddonIDs = addons
			}
			if cmd.Flags().Changed("rush") {
				sel.RushDays = rushDays
			}

			est, err := session.Recompute(sel)
			if err != nil {
				return err
			}
			printEstimate(cmd.OutOrStdout(), &est)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&addons, "addon", nil, "add-on id (repeatable)")
	cmd.Flags().IntVar(&rushDays, "rush", 0, "rush days (0-10)")
	return cmd
}
