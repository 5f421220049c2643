package analytics_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maqamat-app/maqamat/internal/analytics"
	"github.com/maqamat-app/maqamat/internal/db"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	dbh, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })
	return dbh
}

func TestEventLogTrack(t *testing.T) {
	ctx := context.Background()
	dbh := openTestDB(t)
	sink := analytics.NewEventLog(dbh)

	sink.Track(ctx, "assessment_completed", map[string]any{
		"session_id":  "s1",
		"station":     4,
		"total_score": 52,
	})

	var typ, key, data string
	err := dbh.QueryRowContext(ctx, `SELECT typ, key, data FROM event_log`).Scan(&typ, &key, &data)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if typ != "assessment_completed" || key != "s1" {
		t.Fatalf("row = %s/%s", typ, key)
	}
	if !strings.Contains(data, `"total_score":52`) {
		t.Fatalf("payload = %s", data)
	}
}

func TestEventLogSwallowsFailures(t *testing.T) {
	dbh := openTestDB(t)
	sink := analytics.NewEventLog(dbh)
	_ = dbh.Close()

	// closed handle: Track must not panic or surface the error
	sink.Track(context.Background(), "assessment_started", map[string]any{"session_id": "s2"})
}
