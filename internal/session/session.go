// Package session drives one run of the questionnaire: an explicit
// finite-state object stepping Welcome -> Section(0..n-1) -> Results,
// owning the in-progress answer set and invoking the scoring engine once
// when the last section completes.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/maqamat-app/maqamat/internal/catalog"
	"github.com/maqamat-app/maqamat/internal/scoring"
)

type State string

const (
	StateWelcome State = "welcome"
	StateSection State = "section"
	StateResults State = "results"
)

var (
	ErrIncomplete = errors.New("answer all questions in the section before proceeding")
	ErrSubmitted  = errors.New("session already submitted")
)

// Session is the persistable snapshot of one questionnaire run.
type Session struct {
	ID           string          `json:"id"`
	Lang         string          `json:"lang"`
	State        State           `json:"state"`
	SectionIndex int             `json:"section_index"`
	Answers      scoring.Answers `json:"answers"`
	StartedAt    int64           `json:"started_at"`
	SubmittedAt  int64           `json:"submitted_at,omitempty"`
	Result       *scoring.Result `json:"result,omitempty"`
}

// Controller binds a session to the catalog variant it runs against. The
// catalog is immutable for the controller's lifetime; all mutation of the
// answer set goes through Answer.
type Controller struct {
	catalog catalog.Catalog
	sess    *Session
}

// New starts a fresh session against a catalog variant.
func New(c catalog.Catalog) *Controller {
	return &Controller{
		catalog: c,
		sess: &Session{
			ID:        uuid.NewString(),
			Lang:      c.Lang,
			State:     StateWelcome,
			Answers:   scoring.Answers{},
			StartedAt: time.Now().Unix(),
		},
	}
}

// Resume wraps a previously persisted session. The catalog must be the
// variant (or a same-shape localization) the session was started against.
func Resume(c catalog.Catalog, s *Session) *Controller {
	if s.Answers == nil {
		s.Answers = scoring.Answers{}
	}
	if s.SectionIndex < 0 {
		s.SectionIndex = 0
	}
	if max := len(c.Sections) - 1; s.SectionIndex > max {
		s.SectionIndex = max
	}
	return &Controller{catalog: c, sess: s}
}

func (ct *Controller) Session() *Session        { return ct.sess }
func (ct *Controller) Catalog() catalog.Catalog { return ct.catalog }

// Begin moves Welcome -> Section(0). No-op once underway.
func (ct *Controller) Begin() {
	if ct.sess.State == StateWelcome {
		ct.sess.State = StateSection
		ct.sess.SectionIndex = 0
	}
}

// Section returns the section currently being shown.
func (ct *Controller) Section() catalog.Section {
	return ct.catalog.Sections[ct.sess.SectionIndex]
}

// Answer records the chosen option value for a question. The id must exist
// in the catalog and the value must be one of the question's options.
func (ct *Controller) Answer(questionID string, value int) error {
	if ct.sess.State == StateResults {
		return ErrSubmitted
	}
	q, ok := ct.catalog.Question(questionID)
	if !ok {
		return fmt.Errorf("unknown question id: %s", questionID)
	}
	if !q.HasValue(value) {
		return fmt.Errorf("question %s has no option valued %d", questionID, value)
	}
	ct.sess.Answers[questionID] = value
	return nil
}

// CanAdvance reports whether every question in the current section has an
// answer.
func (ct *Controller) CanAdvance() bool {
	for _, q := range ct.Section().Questions {
		if _, ok := ct.sess.Answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// Next advances to the following section, or submits when the current
// section is the last. The incomplete-answer guard lives here, not in the
// engine.
func (ct *Controller) Next() error {
	if ct.sess.State == StateResults {
		return ErrSubmitted
	}
	if !ct.CanAdvance() {
		return ErrIncomplete
	}
	if ct.sess.SectionIndex+1 < len(ct.catalog.Sections) {
		ct.sess.SectionIndex++
		return nil
	}
	ct.Submit()
	return nil
}

// Prev steps back one section; at the first section it is a no-op.
func (ct *Controller) Prev() {
	if ct.sess.State == StateSection && ct.sess.SectionIndex > 0 {
		ct.sess.SectionIndex--
	}
}

// Progress reports answered and total question counts.
func (ct *Controller) Progress() (answered, total int) {
	for _, s := range ct.catalog.Sections {
		for _, q := range s.Questions {
			total++
			if _, ok := ct.sess.Answers[q.ID]; ok {
				answered++
			}
		}
	}
	return answered, total
}

// Submit classifies the accumulated answers and finalizes the session.
// Classification runs exactly once: subsequent calls return the stored
// result. The engine gets a snapshot copy of the answers so later external
// mutation cannot touch a finished result.
func (ct *Controller) Submit() scoring.Result {
	if ct.sess.Result != nil {
		return *ct.sess.Result
	}
	res := scoring.Classify(ct.catalog, ct.sess.Answers.Clone())
	ct.sess.Result = &res
	ct.sess.State = StateResults
	ct.sess.SubmittedAt = time.Now().Unix()
	return res
}
