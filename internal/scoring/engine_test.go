package scoring_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/maqamat-app/maqamat/internal/catalog"
	"github.com/maqamat-app/maqamat/internal/scoring"
)

// flat builds a single-section, rule-free catalog with n six-option
// questions (q1..qn, values 0..5), so the score ladder can be exercised
// without any override firing.
func flat(n int) catalog.Catalog {
	qs := make([]catalog.Question, n)
	for i := range qs {
		opts := make([]catalog.Option, 6)
		for v := range opts {
			opts[v] = catalog.Option{Value: v, Label: fmt.Sprintf("option %d", v)}
		}
		qs[i] = catalog.Question{ID: fmt.Sprintf("q%d", i+1), Text: "q", Options: opts}
	}
	return catalog.Catalog{
		Lang:     "test",
		Sections: []catalog.Section{{ID: "S", Title: "S", Questions: qs}},
	}
}

// fill answers every question of the catalog with v.
func fill(c catalog.Catalog, v int) scoring.Answers {
	a := scoring.Answers{}
	for _, s := range c.Sections {
		for _, q := range s.Questions {
			a[q.ID] = v
		}
	}
	return a
}

// spread builds answers over a flat catalog summing to total, greedily
// assigning up to 5 per question.
func spread(c catalog.Catalog, total int) scoring.Answers {
	a := scoring.Answers{}
	left := total
	for _, s := range c.Sections {
		for _, q := range s.Questions {
			v := left
			if v > 5 {
				v = 5
			}
			a[q.ID] = v
			left -= v
		}
	}
	if left != 0 {
		panic(fmt.Sprintf("catalog too small for total %d", total))
	}
	return a
}

func TestClassifyTotality(t *testing.T) {
	c := catalog.Builtin()
	cases := []struct {
		name    string
		answers scoring.Answers
	}{
		{"nil map", nil},
		{"empty map", scoring.Answers{}},
		{"unknown ids only", scoring.Answers{"Z9": 5, "nope": 3}},
		{"partial", scoring.Answers{"A1": 3, "B2": 4}},
		{"negative values", scoring.Answers{"A1": -7, "B1": -3}},
		{"out of range values", scoring.Answers{"A1": 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := scoring.Classify(c, tc.answers)
			if res.Station < 1 || res.Station > 9 {
				t.Fatalf("station out of range: %d", res.Station)
			}
			if len(res.SectionScores) != len(c.Sections) {
				t.Fatalf("expected %d section scores, got %d", len(c.Sections), len(res.SectionScores))
			}
		})
	}

	// zero-value catalog
	res := scoring.Classify(catalog.Catalog{}, scoring.Answers{"a": 1})
	if res.Station != 1 || res.TotalScore != 0 {
		t.Fatalf("zero catalog: got station %d total %d", res.Station, res.TotalScore)
	}
}

func TestClassifyAdditivity(t *testing.T) {
	c := catalog.Builtin()
	answers := scoring.Answers{"A1": 3, "A2": 1, "B1": 4, "C3": 5, "F1": 2, "ghost": 9}
	res := scoring.Classify(c, answers)

	sum := 0
	for _, v := range res.SectionScores {
		sum += v
	}
	if res.TotalScore != sum {
		t.Fatalf("total %d != sum of sections %d", res.TotalScore, sum)
	}
	want := map[string]int{"A": 4, "B": 4, "C": 5, "D": 0, "E": 0, "F": 2}
	if !reflect.DeepEqual(res.SectionScores, want) {
		t.Fatalf("section scores = %v, want %v", res.SectionScores, want)
	}
	if res.TotalScore != 15 {
		t.Fatalf("unknown id leaked into total: %d", res.TotalScore)
	}
}

func TestLadderBoundaries(t *testing.T) {
	c := flat(22) // max 110, no rules: ladder only
	cases := []struct {
		total   int
		station int
	}{
		{0, 1},
		{20, 1},
		{21, 2},
		{35, 2},
		{36, 3},
		{45, 3},
		{46, 4},
		{55, 4},
		{56, 5},
		{65, 5},
		{66, 6},
		{75, 6},
		{76, 7},
		{85, 7},
		{86, 8},
		{95, 8},
		{96, 9},
		{110, 9},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("total=%d", tc.total), func(t *testing.T) {
			res := scoring.Classify(c, spread(c, tc.total))
			if res.TotalScore != tc.total {
				t.Fatalf("total = %d, want %d", res.TotalScore, tc.total)
			}
			if res.Station != tc.station {
				t.Fatalf("station = %d, want %d", res.Station, tc.station)
			}
		})
	}
}

func TestLadderMonotonicity(t *testing.T) {
	c := flat(22)
	answers := scoring.Answers{}
	prev := scoring.Classify(c, answers)
	for _, s := range c.Sections {
		for _, q := range s.Questions {
			for v := 1; v <= 5; v++ {
				answers[q.ID] = v
				res := scoring.Classify(c, answers)
				if res.TotalScore != prev.TotalScore+1 {
					t.Fatalf("total did not increase by 1: %d -> %d", prev.TotalScore, res.TotalScore)
				}
				if res.Station < prev.Station {
					t.Fatalf("station regressed %d -> %d at total %d", prev.Station, res.Station, res.TotalScore)
				}
				prev = res
			}
		}
	}
	if prev.TotalScore != 110 || prev.Station != 9 {
		t.Fatalf("final state: total %d station %d", prev.TotalScore, prev.Station)
	}
}

func TestOverridePrecedence(t *testing.T) {
	c := catalog.Builtin()

	t.Run("primary zero beats maximal rest", func(t *testing.T) {
		a := fill(c, 5)
		a["A1"] = 0
		res := scoring.Classify(c, a)
		if res.Station != 1 {
			t.Fatalf("station = %d, want 1", res.Station)
		}
	})

	t.Run("transgression with acknowledgment forces station 2", func(t *testing.T) {
		a := fill(c, 5)
		a["A1"] = 2 // below the primary override only
		a["A4"] = 0
		a["A5"] = 3
		res := scoring.Classify(c, a)
		if res.Station != 2 {
			t.Fatalf("station = %d, want 2 (total %d)", res.Station, res.TotalScore)
		}
		if res.TotalScore <= 95 {
			t.Fatalf("fixture should exceed the top ladder band, total %d", res.TotalScore)
		}
	})

	t.Run("transgression without acknowledgment does not fire", func(t *testing.T) {
		a := fill(c, 5)
		a["A1"] = 2
		a["A4"] = 1
		a["A5"] = 1
		res := scoring.Classify(c, a)
		// falls through to the foundations tier: A subtotal 2+5+5+1+1=14 <= 15
		if res.Station != 2 {
			t.Fatalf("station = %d, want 2 via foundations subtotal", res.Station)
		}
	})

	t.Run("foundations floor forces station 1", func(t *testing.T) {
		a := fill(c, 5)
		a["A1"] = 2
		a["A2"] = 0
		a["A3"] = 0
		a["A4"] = 3
		a["A5"] = 4
		// A subtotal = 9 < 10
		res := scoring.Classify(c, a)
		if res.Station != 1 {
			t.Fatalf("station = %d, want 1", res.Station)
		}
	})

	t.Run("foundations low bound forces station 2", func(t *testing.T) {
		a := fill(c, 5)
		a["A1"] = 2
		a["A2"] = 2
		a["A3"] = 2
		a["A4"] = 5
		a["A5"] = 4
		// A subtotal = 15, at the inclusive low bound
		res := scoring.Classify(c, a)
		if res.Station != 2 {
			t.Fatalf("station = %d, want 2", res.Station)
		}
	})

	t.Run("foundations above low bound falls to ladder", func(t *testing.T) {
		a := fill(c, 5)
		a["A1"] = 2
		a["A4"] = 4
		a["A5"] = 5
		// A subtotal = 21; total 106 > 95
		res := scoring.Classify(c, a)
		if res.Station != 9 {
			t.Fatalf("station = %d, want 9 (total %d)", res.Station, res.TotalScore)
		}
	})
}

func TestVariantWithoutAcknowledgment(t *testing.T) {
	// A catalog that has a primary question but no acknowledgment question
	// keys the station-2 override on the primary answer itself.
	c := flat(10)
	c.Rules = catalog.Rules{PrimaryID: "q1"}

	a := fill(c, 5)
	a["q1"] = 2
	res := scoring.Classify(c, a)
	if res.Station != 2 {
		t.Fatalf("primary=2 without acknowledgment: station = %d, want 2", res.Station)
	}

	a["q1"] = 3
	res = scoring.Classify(c, a)
	if res.Station == 1 || res.Station == 2 {
		t.Fatalf("primary=3 should fall through to the ladder, got station %d", res.Station)
	}
}

func TestScenarios(t *testing.T) {
	c := catalog.Builtin()

	t.Run("all zeros", func(t *testing.T) {
		res := scoring.Classify(c, fill(c, 0))
		if res.Station != 1 || res.TotalScore != 0 {
			t.Fatalf("got station %d total %d", res.Station, res.TotalScore)
		}
	})

	t.Run("all fives", func(t *testing.T) {
		res := scoring.Classify(c, fill(c, 5))
		if res.TotalScore != 110 {
			t.Fatalf("total = %d, want 110", res.TotalScore)
		}
		if res.Station != 9 {
			t.Fatalf("station = %d, want 9", res.Station)
		}
	})

	t.Run("high total with transgression override", func(t *testing.T) {
		a := fill(c, 5)
		a["A1"] = 2
		a["A4"] = 0
		a["A5"] = 3
		res := scoring.Classify(c, a)
		if res.Station != 2 {
			t.Fatalf("station = %d, want 2", res.Station)
		}
	})

	t.Run("sum 45 no override", func(t *testing.T) {
		// A: 4+4+4+2+2 = 16 (A1=4 clears the primary rule, A4=2/A5=2
		// avoids the transgression rule, subtotal 16 clears the tier)
		a := scoring.Answers{
			"A1": 4, "A2": 4, "A3": 4, "A4": 2, "A5": 2,
			"B1": 5, "B2": 5, "B3": 5, "B4": 5,
			"C1": 5, "C2": 4, "C3": 0,
		}
		res := scoring.Classify(c, a)
		if res.TotalScore != 45 {
			t.Fatalf("total = %d, want 45", res.TotalScore)
		}
		if res.Station != 3 {
			t.Fatalf("station = %d, want 3", res.Station)
		}
	})

	t.Run("empty map", func(t *testing.T) {
		res := scoring.Classify(c, scoring.Answers{})
		if res.Station != 1 || res.TotalScore != 0 {
			t.Fatalf("got station %d total %d", res.Station, res.TotalScore)
		}
		for id, v := range res.SectionScores {
			if v != 0 {
				t.Fatalf("section %s = %d, want 0", id, v)
			}
		}
	})
}

func TestIdempotence(t *testing.T) {
	c := catalog.Builtin()
	a := scoring.Answers{"A1": 4, "A4": 3, "A5": 2, "B1": 5, "E3": 1}
	first := scoring.Classify(c, a)
	second := scoring.Classify(c, a)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
}

func TestLocalizationInvariance(t *testing.T) {
	en := catalog.Builtin()

	// Structurally identical variant with every display string replaced.
	xx := catalog.Builtin()
	xx.Lang = "xx"
	xx.Title = "?"
	for i := range xx.Sections {
		xx.Sections[i].Title = "?"
		xx.Sections[i].Native = ""
		xx.Sections[i].Description = "?"
		for j := range xx.Sections[i].Questions {
			xx.Sections[i].Questions[j].Text = "?"
			xx.Sections[i].Questions[j].Subtitle = ""
			for k := range xx.Sections[i].Questions[j].Options {
				xx.Sections[i].Questions[j].Options[k].Label = "?"
			}
		}
	}
	if err := catalog.SameShape(en, xx); err != nil {
		t.Fatalf("variants should share a shape: %v", err)
	}

	answerSets := []scoring.Answers{
		nil,
		fill(en, 0),
		fill(en, 5),
		{"A1": 3, "A4": 1, "A5": 4, "D2": 5},
	}
	for _, a := range answerSets {
		if got, want := scoring.Classify(xx, a), scoring.Classify(en, a); !reflect.DeepEqual(got, want) {
			t.Fatalf("variant diverged for %v: %+v vs %+v", a, got, want)
		}
	}
}

func TestAnswersClone(t *testing.T) {
	a := scoring.Answers{"A1": 4}
	b := a.Clone()
	b["A1"] = 0
	b["A2"] = 1
	if a["A1"] != 4 {
		t.Fatalf("clone shares storage with original")
	}
	if _, ok := a["A2"]; ok {
		t.Fatalf("clone shares storage with original")
	}
}
