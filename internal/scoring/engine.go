// Package scoring implements the classification engine: a pure, total
// function from a catalog and an answer set to exactly one of the nine
// stations.
package scoring

import "github.com/maqamat-app/maqamat/internal/catalog"

// Answers maps question id to the chosen option value. Missing entries
// score 0; entries whose ids are not in the catalog are ignored.
type Answers map[string]int

// Clone returns an independent copy, so a caller can snapshot an answer set
// it intends to keep mutating.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Result is the outcome of one classification. Station is always in [1,9];
// TotalScore equals the sum of SectionScores.
type Result struct {
	Station       int            `json:"station"`
	TotalScore    int            `json:"total_score"`
	SectionScores map[string]int `json:"section_scores"`
}

// ladder holds the inclusive upper bound of each station band; totals above
// the last bound classify as station 9.
var ladder = [...]int{20, 35, 45, 55, 65, 75, 85, 95}

// Classify resolves an answer set to a station. It never fails: any answer
// map (nil, empty, partial, or carrying unknown ids) yields a result, and
// identical inputs yield identical results.
//
// Overrides fire before the score ladder, first match wins:
//  1. primary-obligation answer <= 1 forces station 1
//  2. transgression answer <= 1 with acknowledgment >= 2 forces station 2
//     (variants without an acknowledgment question key on primary <= 2)
//  3. foundations-section subtotal below its floor forces station 1, at or
//     below its low bound forces station 2
func Classify(c catalog.Catalog, answers Answers) Result {
	sectionScores := make(map[string]int, len(c.Sections))
	total := 0
	for _, s := range c.Sections {
		sum := 0
		for _, q := range s.Questions {
			sum += answers[q.ID]
		}
		sectionScores[s.ID] = sum
		total += sum
	}
	res := Result{TotalScore: total, SectionScores: sectionScores}

	r := c.Rules
	if r.PrimaryID != "" && answers[r.PrimaryID] <= 1 {
		res.Station = 1
		return res
	}
	switch {
	case r.TransgressionID != "" && r.AcknowledgmentID != "":
		if answers[r.TransgressionID] <= 1 && answers[r.AcknowledgmentID] >= 2 {
			res.Station = 2
			return res
		}
	case r.PrimaryID != "":
		if answers[r.PrimaryID] <= 2 {
			res.Station = 2
			return res
		}
	}
	if r.FoundationID != "" {
		sub := sectionScores[r.FoundationID]
		if sub < r.FoundationFloor {
			res.Station = 1
			return res
		}
		if sub <= r.FoundationLow {
			res.Station = 2
			return res
		}
	}

	for i, bound := range ladder {
		if total <= bound {
			res.Station = i + 1
			return res
		}
	}
	res.Station = len(ladder) + 1
	return res
}
