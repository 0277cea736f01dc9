package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cerberus/models"
	"cerberus/services/estimate"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved estimate",
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := session.Current()
			if err != nil {
				return err
			}
			printEstimate(cmd.OutOrStdout(), est)
			return nil
		},
	}
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List packages, add-ons and post-only services",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := session.Catalog.Data()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(tw, "PACKAGES")
			for _, p := range data.Packages {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", p.ID, p.Name, estimate.Money(p.Price))
			}
			fmt.Fprintln(tw, "ADD-ONS")
			for _, a := range data.Addons {
				price := a.PriceNote
				if a.Type == models.AddonFixed {
					price = estimate.Money(a.Price)
				}
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", a.ID, a.Name, price)
			}
			fmt.Fprintln(tw, "POST-ONLY")
			for _, s := range data.PostOnly {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", s.ID, s.Name, s.PriceNote)
			}
			return tw.Flush()
		},
	}
}
