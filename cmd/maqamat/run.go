package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/maqamat-app/maqamat/internal/catalog"
	"github.com/maqamat-app/maqamat/internal/history"
	"github.com/maqamat-app/maqamat/internal/render"
	"github.com/maqamat-app/maqamat/internal/session"
	"github.com/maqamat-app/maqamat/internal/station"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const (
	navContinue = "Continue →"
	navPrevious = "← Previous section"
	navQuit     = "Save & quit"
)

func (a *app) runAssessment(cmd *cobra.Command, resume bool) error {
	ctx := cmd.Context()
	if err := a.open(ctx); err != nil {
		return err
	}

	cat := a.variant()
	out := cmd.OutOrStdout()

	var ct *session.Controller
	if resume {
		sess, err := a.sessions.LatestInProgress(ctx)
		switch {
		case errors.Is(err, session.ErrNotFound):
			fmt.Fprintln(out, styleDim.Render("No unfinished assessment; starting a new one."))
		case err != nil:
			return err
		default:
			if c, ok := catalog.Get(sess.Lang); ok {
				cat = c
			}
			ct = session.Resume(cat, sess)
		}
	}
	if ct == nil {
		ct = session.New(cat)
		a.printWelcome(out, cat)
		ct.Begin()
		a.sink.Track(ctx, "assessment_started", map[string]any{
			"session_id": ct.Session().ID,
			"lang":       cat.Lang,
		})
	}
	if err := a.sessions.Put(ctx, ct.Session()); err != nil {
		return err
	}

	for ct.Session().State == session.StateSection {
		sec := ct.Section()
		answered, total := ct.Progress()
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.SectionHeader(sec, ct.Session().SectionIndex, len(cat.Sections)))
		fmt.Fprintln(out, render.ProgressBar(answered, total, 30))
		fmt.Fprintln(out)

		for _, q := range sec.Questions {
			cur, has := ct.Session().Answers[q.ID]
			value, err := askQuestion(q, cur, has)
			if err != nil {
				return a.interrupted(ctx, ct, out, err)
			}
			if err := ct.Answer(q.ID, value); err != nil {
				return err
			}
			if err := a.sessions.Put(ctx, ct.Session()); err != nil {
				return err
			}
		}

		choice, err := askNavigation(ct.Session().SectionIndex, len(cat.Sections))
		if err != nil {
			return a.interrupted(ctx, ct, out, err)
		}
		switch choice {
		case navPrevious:
			ct.Prev()
		case navQuit:
			return a.interrupted(ctx, ct, out, nil)
		default:
			if err := ct.Next(); err != nil {
				return err
			}
		}
		if err := a.sessions.Put(ctx, ct.Session()); err != nil {
			return err
		}
	}

	res := ct.Submit()
	sess := ct.Session()
	if err := a.sessions.Put(ctx, sess); err != nil {
		return err
	}
	if err := a.archive.Append(ctx, history.Entry{
		Result:  res,
		Lang:    cat.Lang,
		TakenAt: sess.SubmittedAt,
		Answers: sess.Answers.Clone(),
	}); err != nil {
		// history trouble never blocks showing the result
		fmt.Fprintln(out, styleDim.Render("(could not archive this result)"))
	}
	params := map[string]any{
		"session_id":  sess.ID,
		"lang":        cat.Lang,
		"station":     res.Station,
		"total_score": res.TotalScore,
	}
	for id, v := range res.SectionScores {
		params["section_"+id] = v
	}
	a.sink.Track(ctx, "assessment_completed", params)

	st, ok := station.Get(res.Station)
	if !ok {
		return fmt.Errorf("no station descriptor for %d", res.Station)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, render.ResultCard(res, st, cat))
	fmt.Fprintln(out)
	fmt.Fprintln(out, styleDim.Render(`"All nine categories are people of Paradise" — run 'maqamat share' to share this result.`))
	return nil
}

func (a *app) printWelcome(out io.Writer, cat catalog.Catalog) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, styleTitle.Render(cat.Title))
	fmt.Fprintln(out, styleDim.Render(fmt.Sprintf("%d questions • ~10 minutes • for personal reflection only", cat.NumQuestions())))
	fmt.Fprintln(out)
}

// interrupted saves progress and exits cleanly; Ctrl-C mid-question is a
// save-and-quit, not an error.
func (a *app) interrupted(ctx context.Context, ct *session.Controller, out io.Writer, err error) error {
	if err != nil && !errors.Is(err, promptui.ErrInterrupt) {
		return err
	}
	_ = a.sessions.Put(ctx, ct.Session())
	answered, total := ct.Progress()
	fmt.Fprintln(out, styleDim.Render(fmt.Sprintf("Progress saved (%d/%d answered). Run 'maqamat resume' to continue.", answered, total)))
	return nil
}

func askQuestion(q catalog.Question, current int, answered bool) (int, error) {
	items := make([]string, len(q.Options))
	pos := 0
	for i, o := range q.Options {
		items[i] = o.Label
		if answered && o.Value == current {
			pos = i
		}
	}
	label := q.Text
	if q.Subtitle != "" {
		label = fmt.Sprintf("%s — %s", q.Text, q.Subtitle)
	}
	sel := promptui.Select{
		Label:     label,
		Items:     items,
		Size:      len(items),
		CursorPos: pos,
		HideHelp:  true,
	}
	i, _, err := sel.Run()
	if err != nil {
		return 0, err
	}
	return q.Options[i].Value, nil
}

func askNavigation(index, count int) (string, error) {
	items := []string{navContinue}
	if index == count-1 {
		items = []string{"See results"}
	}
	if index > 0 {
		items = append(items, navPrevious)
	}
	items = append(items, navQuit)
	sel := promptui.Select{
		Label:    "Section complete",
		Items:    items,
		HideHelp: true,
	}
	_, choice, err := sel.Run()
	if err != nil {
		return "", err
	}
	if choice == "See results" {
		return navContinue, nil
	}
	return choice, nil
}
