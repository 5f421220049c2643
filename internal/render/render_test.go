package render_test

import (
	"strings"
	"testing"

	"github.com/maqamat-app/maqamat/internal/catalog"
	"github.com/maqamat-app/maqamat/internal/render"
	"github.com/maqamat-app/maqamat/internal/scoring"
	"github.com/maqamat-app/maqamat/internal/station"
)

func TestProgressBar(t *testing.T) {
	cases := []struct {
		answered, total, width int
		wantPct                string
	}{
		{0, 22, 10, "  0%"},
		{11, 22, 10, " 50%"},
		{22, 22, 10, "100%"},
		{5, 0, 10, "  0%"}, // degenerate catalog
	}
	for _, tc := range cases {
		got := render.ProgressBar(tc.answered, tc.total, tc.width)
		if !strings.HasSuffix(got, tc.wantPct) {
			t.Fatalf("ProgressBar(%d,%d,%d) = %q, want suffix %q", tc.answered, tc.total, tc.width, got, tc.wantPct)
		}
	}
	full := render.ProgressBar(22, 22, 8)
	if !strings.Contains(full, strings.Repeat("█", 8)) {
		t.Fatalf("full bar not filled: %q", full)
	}
}

func TestResultCardContent(t *testing.T) {
	c := catalog.Builtin()
	res := scoring.Classify(c, scoring.Answers{"A1": 4, "A2": 4, "A3": 4, "A4": 4, "A5": 4, "B1": 5})
	st, ok := station.Get(res.Station)
	if !ok {
		t.Fatalf("no station for %d", res.Station)
	}
	card := render.ResultCard(res, st, c)
	for _, want := range []string{st.Name, "Score", "Your Current State", "The Good News", st.Figure, "Your Path Forward"} {
		if !strings.Contains(card, want) {
			t.Fatalf("card missing %q", want)
		}
	}
	for _, s := range c.Sections {
		if !strings.Contains(card, s.Title) {
			t.Fatalf("card missing section %s", s.ID)
		}
	}
}

func TestResultCardWarningOnlyForNine(t *testing.T) {
	c := catalog.Builtin()
	nine, _ := station.Get(9)
	res := scoring.Result{Station: 9, TotalScore: 110, SectionScores: map[string]int{}}
	if !strings.Contains(render.ResultCard(res, nine, c), nine.Warning) {
		t.Fatalf("station 9 card must carry the warning")
	}
	one, _ := station.Get(1)
	res = scoring.Result{Station: 1, TotalScore: 0, SectionScores: map[string]int{}}
	if strings.Contains(render.ResultCard(res, one, c), "⚠") {
		t.Fatalf("station 1 card should not warn")
	}
}

func TestShareText(t *testing.T) {
	c := catalog.Builtin()
	res := scoring.Result{Station: 4, TotalScore: 52, SectionScores: map[string]int{}}
	st, _ := station.Get(4)
	got := render.ShareText(res, st, c)
	for _, want := range []string{"Station 4 of 9", "The Lesser Evil", "52/110", "Muqtaṣid"} {
		if !strings.Contains(got, want) {
			t.Fatalf("share text %q missing %q", got, want)
		}
	}
}

func TestSectionHeader(t *testing.T) {
	c := catalog.Builtin()
	h := render.SectionHeader(c.Sections[0], 0, len(c.Sections))
	for _, want := range []string{"Section 1/6", "The Foundations", c.Sections[0].Native} {
		if !strings.Contains(h, want) {
			t.Fatalf("header %q missing %q", h, want)
		}
	}
}
