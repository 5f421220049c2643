package catalog

import (
	"errors"
	"fmt"
)

// Validate runs the authoring-time consistency checks: unique section ids,
// globally unique question ids, non-empty option lists, and override rules
// that reference questions/sections actually present. The classification
// engine never validates at call time; run this once when a catalog is
// loaded or registered.
func Validate(c Catalog) error {
	if len(c.Sections) == 0 {
		return errors.New("catalog has no sections")
	}
	secSeen := map[string]bool{}
	qSeen := map[string]bool{}
	for _, s := range c.Sections {
		if s.ID == "" {
			return errors.New("section.id is required")
		}
		if secSeen[s.ID] {
			return fmt.Errorf("duplicate section id: %s", s.ID)
		}
		secSeen[s.ID] = true
		if len(s.Questions) == 0 {
			return fmt.Errorf("section %s has no questions", s.ID)
		}
		for _, q := range s.Questions {
			if q.ID == "" {
				return fmt.Errorf("question.id required in section %s", s.ID)
			}
			if qSeen[q.ID] {
				return fmt.Errorf("duplicate question id: %s", q.ID)
			}
			qSeen[q.ID] = true
			if len(q.Options) == 0 {
				return fmt.Errorf("question %s has no options", q.ID)
			}
			valSeen := map[int]bool{}
			for _, o := range q.Options {
				if valSeen[o.Value] {
					return fmt.Errorf("question %s repeats option value %d", q.ID, o.Value)
				}
				valSeen[o.Value] = true
			}
		}
	}
	return validateRules(c.Rules, secSeen, qSeen)
}

func validateRules(r Rules, sections, questions map[string]bool) error {
	for _, id := range []string{r.PrimaryID, r.TransgressionID, r.AcknowledgmentID} {
		if id != "" && !questions[id] {
			return fmt.Errorf("rules reference unknown question id: %s", id)
		}
	}
	if r.FoundationID != "" {
		if !sections[r.FoundationID] {
			return fmt.Errorf("rules reference unknown section id: %s", r.FoundationID)
		}
		if r.FoundationLow < r.FoundationFloor {
			return fmt.Errorf("foundation bounds out of order: low %d < floor %d", r.FoundationLow, r.FoundationFloor)
		}
	}
	return nil
}

// SameShape checks that two localized variants are structurally identical:
// same section ids in order, same question ids in order, same option value
// sets, same rules. Display text is free to differ.
func SameShape(a, b Catalog) error {
	if len(a.Sections) != len(b.Sections) {
		return fmt.Errorf("section count differs: %d vs %d", len(a.Sections), len(b.Sections))
	}
	for i, sa := range a.Sections {
		sb := b.Sections[i]
		if sa.ID != sb.ID {
			return fmt.Errorf("section %d id differs: %s vs %s", i, sa.ID, sb.ID)
		}
		if len(sa.Questions) != len(sb.Questions) {
			return fmt.Errorf("section %s question count differs", sa.ID)
		}
		for j, qa := range sa.Questions {
			qb := sb.Questions[j]
			if qa.ID != qb.ID {
				return fmt.Errorf("question %d in section %s id differs: %s vs %s", j, sa.ID, qa.ID, qb.ID)
			}
			if len(qa.Options) != len(qb.Options) {
				return fmt.Errorf("question %s option count differs", qa.ID)
			}
			for k, oa := range qa.Options {
				if oa.Value != qb.Options[k].Value {
					return fmt.Errorf("question %s option %d value differs: %d vs %d", qa.ID, k, oa.Value, qb.Options[k].Value)
				}
			}
		}
	}
	if a.Rules != b.Rules {
		return errors.New("rules differ between variants")
	}
	return nil
}
