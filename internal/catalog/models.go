package catalog

// Option is one selectable answer carrying an integer score.
// Values are opaque signed integers; contiguity or zero-basing is a
// content convention, never assumed by code.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type Question struct {
	ID       string   `json:"id"` // unique across the whole catalog
	Text     string   `json:"text"`
	Subtitle string   `json:"subtitle,omitempty"`
	Critical bool     `json:"critical,omitempty"` // flagged in authoring content; rules reference ids directly
	Options  []Option `json:"options"`
}

// HasValue reports whether v is one of the question's option values.
func (q Question) HasValue(v int) bool {
	for _, o := range q.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// MaxValue returns the largest option value, or 0 for an empty option list.
func (q Question) MaxValue() int {
	if len(q.Options) == 0 {
		return 0
	}
	max := q.Options[0].Value
	for _, o := range q.Options[1:] {
		if o.Value > max {
			max = o.Value
		}
	}
	return max
}

type Section struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Native      string     `json:"native,omitempty"` // heading in the source language (Arabic in the built-in catalog)
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
}

// Rules designates the questions and bounds the classification overrides
// key on. A zero Rules disables all overrides (ladder-only catalogs).
type Rules struct {
	// PrimaryID is the core-obligation question; an answer <= 1 forces
	// the lowest station.
	PrimaryID string `json:"primary_id,omitempty"`
	// TransgressionID/AcknowledgmentID drive the station-2 override. A
	// catalog variant without a separate acknowledgment question leaves
	// AcknowledgmentID empty and keys the override on PrimaryID <= 2.
	TransgressionID  string `json:"transgression_id,omitempty"`
	AcknowledgmentID string `json:"acknowledgment_id,omitempty"`
	// FoundationID names the section whose subtotal gets its own override
	// tier: below FoundationFloor forces station 1, at or below
	// FoundationLow forces station 2.
	FoundationID    string `json:"foundation_id,omitempty"`
	FoundationFloor int    `json:"foundation_floor,omitempty"`
	FoundationLow   int    `json:"foundation_low,omitempty"`
}

type Catalog struct {
	Lang     string    `json:"lang"`
	Title    string    `json:"title,omitempty"`
	Sections []Section `json:"sections"`
	Rules    Rules     `json:"rules,omitempty"`
}

// NumQuestions counts questions across all sections.
func (c Catalog) NumQuestions() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Questions)
	}
	return n
}

// MaxScore is the largest total a complete answer set can reach. Computed
// from the option values so UI denominators stay honest for any catalog.
func (c Catalog) MaxScore() int {
	sum := 0
	for _, s := range c.Sections {
		for _, q := range s.Questions {
			sum += q.MaxValue()
		}
	}
	return sum
}

// SectionMaxScore is MaxScore restricted to one section id.
func (c Catalog) SectionMaxScore(sectionID string) int {
	sum := 0
	for _, s := range c.Sections {
		if s.ID != sectionID {
			continue
		}
		for _, q := range s.Questions {
			sum += q.MaxValue()
		}
	}
	return sum
}

// Question looks a question up by id.
func (c Catalog) Question(id string) (Question, bool) {
	for _, s := range c.Sections {
		for _, q := range s.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}
