package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maqamat-app/maqamat/internal/catalog"
	"github.com/maqamat-app/maqamat/internal/history"
	"github.com/maqamat-app/maqamat/internal/render"
	"github.com/maqamat-app/maqamat/internal/station"
)

func newCatalogCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and validate question catalogs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate <file>",
		Short: "Check a JSON catalog for authoring errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			c, err := catalog.Load(f)
			if err != nil {
				return err
			}
			base := catalog.Default()
			shape := "shape matches the built-in catalog"
			if err := catalog.SameShape(base, c); err != nil {
				shape = fmt.Sprintf("shape differs from the built-in catalog (%v)", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d sections, %d questions, max score %d; %s\n",
				len(c.Sections), c.NumQuestions(), c.MaxScore(), shape)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "langs",
		Short: "List registered catalog languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range catalog.Langs() {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	})

	return cmd
}

// shareFor resolves the catalog variant an entry was taken against before
// formatting, so the score denominator matches.
func shareFor(a *app, e history.Entry, st station.Station) string {
	cat := catalog.Default()
	if c, ok := catalog.Get(e.Lang); ok {
		cat = c
	}
	return render.ShareText(e.Result, st, cat)
}
