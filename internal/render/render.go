// Package render turns classification results into terminal output and
// share strings. Everything here is a pure function over immutable inputs;
// nothing feeds back into the engine.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/maqamat-app/maqamat/internal/catalog"
	"github.com/maqamat-app/maqamat/internal/scoring"
	"github.com/maqamat-app/maqamat/internal/station"
)

var (
	styleFaint   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	styleNative  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleGood    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleCard    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)
)

// SectionHeader renders the banner shown above a section's questions.
func SectionHeader(s catalog.Section, index, count int) string {
	var b strings.Builder
	b.WriteString(styleFaint.Render(fmt.Sprintf("Section %d/%d", index+1, count)))
	b.WriteString("\n")
	if s.Native != "" {
		b.WriteString(styleNative.Render(s.Native))
		b.WriteString("\n")
	}
	b.WriteString(styleHeading.Render(s.Title))
	if s.Description != "" {
		b.WriteString("\n")
		b.WriteString(styleFaint.Render(s.Description))
	}
	return b.String()
}

// ProgressBar renders answered/total as a fixed-width bar with percentage.
func ProgressBar(answered, total, width int) string {
	if width < 1 {
		width = 1
	}
	pct := 0
	filled := 0
	if total > 0 {
		pct = answered * 100 / total
		filled = answered * width / total
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// ResultCard renders the full results view: station identity, score grid,
// current state, good news, historical figure, and next steps.
func ResultCard(res scoring.Result, st station.Station, c catalog.Catalog) string {
	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(st.Color))

	var b strings.Builder
	b.WriteString(styleFaint.Render("YOUR STATION"))
	b.WriteString("\n\n")
	b.WriteString(accent.Render(fmt.Sprintf("Station %d — %s", st.ID, st.Name)))
	b.WriteString("\n")
	if st.Native != "" {
		b.WriteString(styleNative.Render(st.Native))
		b.WriteString("\n")
	}
	b.WriteString(styleFaint.Render(fmt.Sprintf("%s • %s", st.Category.Native(), st.Category.Name())))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Score %d/%d\n", res.TotalScore, c.MaxScore()))
	b.WriteString(sectionGrid(res, c))
	b.WriteString("\n")

	b.WriteString(styleHeading.Render("Your Current State"))
	b.WriteString("\n" + st.CurrentState + "\n\n")

	b.WriteString(styleGood.Render("✦ The Good News"))
	b.WriteString("\n")
	for _, n := range st.GoodNews {
		b.WriteString("  • " + n + "\n")
	}
	b.WriteString("\n")

	b.WriteString(styleHeading.Render("Historical Inspiration"))
	b.WriteString("\n" + st.Figure + "\n")
	b.WriteString(styleFaint.Render(st.FigureStory))
	b.WriteString("\n\n")

	b.WriteString(styleHeading.Render("Your Path Forward"))
	b.WriteString("\n")
	for i, step := range st.Steps {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
	}

	if st.Warning != "" {
		b.WriteString("\n")
		b.WriteString(styleWarn.Render("⚠ " + st.Warning))
		b.WriteString("\n")
	}

	return styleCard.Render(strings.TrimRight(b.String(), "\n"))
}

func sectionGrid(res scoring.Result, c catalog.Catalog) string {
	var b strings.Builder
	for _, s := range c.Sections {
		b.WriteString(styleFaint.Render(fmt.Sprintf("  %s %-28s", s.ID, s.Title)))
		b.WriteString(fmt.Sprintf("%3d/%d\n", res.SectionScores[s.ID], c.SectionMaxScore(s.ID)))
	}
	return b.String()
}
