// Package analytics is the fire-and-forget telemetry sink the embedding
// application feeds after a classification. The engine itself emits
// nothing.
package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Sink accepts named events with free-form parameters. Implementations
// swallow their own failures; callers never branch on telemetry.
type Sink interface {
	Track(ctx context.Context, event string, params map[string]any)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Track(context.Context, string, map[string]any) {}

// EventLog appends events to the event_log table.
type EventLog struct {
	db     *sql.DB
	siteID string
}

func NewEventLog(db *sql.DB) *EventLog { return &EventLog{db: db, siteID: "local"} }

func (l *EventLog) Track(ctx context.Context, event string, params map[string]any) {
	data, err := json.Marshal(params)
	if err != nil {
		return
	}
	key, _ := params["session_id"].(string)
	_, _ = l.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at) VALUES ($1,$2,$3,$4,$5)`,
		l.siteID, event, key, string(data), time.Now().Unix())
}
