package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/maqamat-app/maqamat/internal/station"
)

func newHistoryCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past assessment results, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.open(ctx); err != nil {
				return err
			}
			entries, err := a.archive.List(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No past results.")
				return nil
			}
			for _, e := range entries {
				name := "?"
				if st, ok := station.Get(e.Result.Station); ok {
					name = st.Name
				}
				fmt.Fprintf(out, "%s  station %d  %-24s score %d\n",
					time.Unix(e.TakenAt, 0).Format("2006-01-02 15:04"),
					e.Result.Station, name, e.Result.TotalScore)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the raw entries as JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all archived results",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.open(ctx); err != nil {
				return err
			}
			if err := a.archive.Clear(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	})

	return cmd
}

func newShareCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "share",
		Short: "Print a shareable summary of the latest result",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.open(ctx); err != nil {
				return err
			}
			entry, ok, err := a.archive.Latest(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no results yet; take the assessment first")
			}
			st, found := station.Get(entry.Result.Station)
			if !found {
				return fmt.Errorf("no station descriptor for %d", entry.Result.Station)
			}
			fmt.Fprintln(cmd.OutOrStdout(), shareFor(a, entry, st))
			return nil
		},
	}
}
