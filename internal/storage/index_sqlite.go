package storage

import (
	"database/sql"
	"fmt"

	"github.com/AndNovian/learning01/internal/goal"
	_ "modernc.org/sqlite"
)

// Index is an ephemeral in-memory SQLite view of a goal list.
// The JSON file stays the source of truth; the index is rebuilt per query.
type Index struct {
	db *sql.DB
}

// OpenIndex opens an empty in-memory index.
func OpenIndex() (*Index, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	// Each connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := createIndexSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating index schema: %w", err)
	}

	return &Index{db: db}, nil
}

// Close closes the index.
func (x *Index) Close() error {
	return x.db.Close()
}

func createIndexSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS goals (
			position INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_goals_status ON goals(status);
	`
	_, err := db.Exec(schema)
	return err
}

// Rebuild clears the index and loads goals, recording each goal's 1-based position.
func (x *Index) Rebuild(goals []goal.Goal) (int, error) {
	tx, err := x.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM goals"); err != nil {
		return 0, fmt.Errorf("clearing goals table: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO goals (position, title, status, created_at)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing goals insert: %w", err)
	}
	defer stmt.Close()

	for _, n := range goal.Number(goals) {
		if _, err := stmt.Exec(n.ID, n.Goal.Title, string(n.Goal.Status), n.Goal.CreatedAt); err != nil {
			return 0, fmt.Errorf("inserting goal %d: %w", n.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing index: %w", err)
	}
	return len(goals), nil
}

// ByStatus returns goals with the given status ordered by position.
func (x *Index) ByStatus(status goal.Status) ([]goal.Numbered, error) {
	rows, err := x.db.Query(`
		SELECT position, title, status, created_at
		FROM goals
		WHERE status = ?
		ORDER BY position
	`, string(status))
	if err != nil {
		return nil, fmt.Errorf("querying goals: %w", err)
	}
	defer rows.Close()

	var out []goal.Numbered
	for rows.Next() {
		var n goal.Numbered
		var st string
		if err := rows.Scan(&n.ID, &n.Goal.Title, &st, &n.Goal.CreatedAt); err != nil {
			return nil, err
		}
		n.Goal.Status = goal.Status(st)
		out = append(out, n)
	}
	return out, rows.Err()
}

// CountByStatus returns the number of goals per status.
// Statuses with no goals are absent from the map.
func (x *Index) CountByStatus() (map[goal.Status]int, error) {
	rows, err := x.db.Query(`
		SELECT status, COUNT(*)
		FROM goals
		GROUP BY status
	`)
	if err != nil {
		return nil, fmt.Errorf("counting goals: %w", err)
	}
	defer rows.Close()

	counts := make(map[goal.Status]int)
	for rows.Next() {
		var st string
		var n int
		if err := rows.Scan(&st, &n); err != nil {
			return nil, err
		}
		counts[goal.Status(st)] = n
	}
	return counts, rows.Err()
}
