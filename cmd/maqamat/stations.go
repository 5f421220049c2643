package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/maqamat-app/maqamat/internal/station"
)

func newStationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stations [id]",
		Short: "Describe the nine stations, or one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, s := range station.All() {
					accent := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
					fmt.Fprintf(out, "%s  %-24s %s\n", accent.Render(strconv.Itoa(s.ID)), s.Name, styleDim.Render(s.Category.Name()))
				}
				return nil
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("station id must be a number: %q", args[0])
			}
			s, ok := station.Get(id)
			if !ok {
				return fmt.Errorf("station id out of range: %d", id)
			}
			accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(s.Color))
			fmt.Fprintln(out, accent.Render(fmt.Sprintf("Station %d — %s", s.ID, s.Name)))
			if s.Native != "" {
				fmt.Fprintln(out, s.Native)
			}
			fmt.Fprintln(out, styleDim.Render(s.Category.Native()+" • "+s.Category.Name()))
			fmt.Fprintln(out)
			fmt.Fprintln(out, s.CurrentState)
			fmt.Fprintln(out)
			fmt.Fprintln(out, s.Figure)
			fmt.Fprintln(out, styleDim.Render(s.FigureStory))
			if s.Warning != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "⚠ "+s.Warning)
			}
			return nil
		},
	}
}
