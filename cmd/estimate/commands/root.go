// Package commands implements the local estimator CLI. The draft estimate is
// kept in a JSON file under the home directory.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cerberus/models"
	"cerberus/services/catalog"
	"cerberus/services/estimate"
)

var (
	home        string
	catalogFile string
	session     *estimate.Session
)

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "estimate",
		Short:         "Build a Cerberus Visuals price estimate",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".cerberus")
			}

			cat, err := catalog.Load(catalogFile)
			if err != nil {
				return err
			}
			session = estimate.NewSession(cat, estimate.NewFileStore(home))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.cerberus)")
	root.PersistentFlags().StringVar(&catalogFile, "catalog", "", "catalog YAML/JSON file (default built-in)")

	root.AddCommand(packageCmd(), postOnlyCmd(), showCmd(), catalogCmd())
	return root
}

func Execute() error {
	return newRoot().Execute()
}

// printEstimate writes the summary followed by the quoted caveat, if any.
func printEstimate(w io.Writer, est *models.DraftEstimate) {
	fmt.Fprintln(w, estimate.Summary(est, session.Catalog.Business()))
	if note := estimate.QuotedCaveat(est); note != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, note)
	}
}
