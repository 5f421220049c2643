package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/maqamat-app/maqamat/internal/scoring"
)

// ErrNotFound is returned when a session id (or a latest-in-progress
// lookup) resolves to nothing.
var ErrNotFound = errors.New("session not found")

// Store persists session snapshots so an interrupted run can be resumed.
type Store interface {
	Put(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	// LatestInProgress returns the most recently started non-submitted
	// session, or ErrNotFound.
	LatestInProgress(ctx context.Context) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Put(ctx context.Context, sess *Session) error {
	answers, err := json.Marshal(sess.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	var result []byte
	if sess.Result != nil {
		if result, err = json.Marshal(sess.Result); err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO sessions (id,lang,state,section_index,answers_json,result_json,started_at,submitted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET state=EXCLUDED.state, section_index=EXCLUDED.section_index,
			answers_json=EXCLUDED.answers_json, result_json=EXCLUDED.result_json, submitted_at=EXCLUDED.submitted_at`,
		sess.ID, sess.Lang, string(sess.State), sess.SectionIndex, string(answers), nullString(result), sess.StartedAt, nullInt(sess.SubmittedAt))
	return err
}

func (s *SQLStore) Get(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,lang,state,section_index,answers_json,result_json,started_at,submitted_at
		FROM sessions WHERE id=$1`, id)
	return scanSession(row)
}

func (s *SQLStore) LatestInProgress(ctx context.Context) (*Session, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,lang,state,section_index,answers_json,result_json,started_at,submitted_at
		FROM sessions WHERE state != 'results' ORDER BY started_at DESC LIMIT 1`)
	return scanSession(row)
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id=$1`, id)
	return err
}

func scanSession(row *sql.Row) (*Session, error) {
	var (
		sess        Session
		state       string
		answersJSON string
		resultJSON  sql.NullString
		submittedAt sql.NullInt64
	)
	if err := row.Scan(&sess.ID, &sess.Lang, &state, &sess.SectionIndex, &answersJSON, &resultJSON, &sess.StartedAt, &submittedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	sess.State = State(state)
	if err := json.Unmarshal([]byte(answersJSON), &sess.Answers); err != nil {
		sess.Answers = scoring.Answers{}
	}
	if resultJSON.Valid && resultJSON.String != "" {
		var res scoring.Result
		if err := json.Unmarshal([]byte(resultJSON.String), &res); err == nil {
			sess.Result = &res
		}
	}
	if submittedAt.Valid {
		sess.SubmittedAt = submittedAt.Int64
	}
	return &sess, nil
}

func nullString(b []byte) sql.NullString {
	if len(b) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}

func nullInt(v int64) sql.NullInt64 {
	if v == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: v, Valid: true}
}
