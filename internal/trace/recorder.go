package trace

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS timeline (
	seq      INTEGER PRIMARY KEY AUTOINCREMENT,
	variable TEXT NOT NULL,
	tick     INTEGER NOT NULL,
	value    TEXT NOT NULL
);`

// Recorder logs every timeline write to a SQLite database, one row per
// entry in commit order. The table is append-only, mirroring the store.
type Recorder struct {
	db   *sql.DB
	stmt *sql.Stmt
}

// OpenRecorder creates (or appends to) the trace database at path.
func OpenRecorder(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("trace: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("trace: init schema: %w", err)
	}
	stmt, err := db.Prepare("INSERT INTO timeline (variable, tick, value) VALUES (?, ?, ?)")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("trace: prepare insert: %w", err)
	}
	return &Recorder{db: db, stmt: stmt}, nil
}

// Record appends one write. Called from the store's observer hook, always
// on the interpreter goroutine.
func (r *Recorder) Record(variable string, tick int, value string) error {
	if _, err := r.stmt.Exec(variable, tick, value); err != nil {
		return fmt.Errorf("trace: record %s@%d: %w", variable, tick, err)
	}
	return nil
}

func (r *Recorder) Close() error {
	r.stmt.Close()
	return r.db.Close()
}
