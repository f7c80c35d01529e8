package memory

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Archive is a derived, searchable index over finished sessions. The JSON
// session log remains the authoritative record; the archive only serves the
// /recall and /sessions commands.
type Archive struct {
	db *sql.DB
}

// ArchivedSession is a row summarizing one stored session.
type ArchivedSession struct {
	ID        string
	StartedAt time.Time
	Messages  int
}

// ArchivedUtterance is one stored turn with its session reference.
type ArchivedUtterance struct {
	SessionID string
	Speaker   string
	Text      string
	Label     string
	Score     float64
	CreatedAt time.Time
}

// OpenArchive opens (or creates) the archive database.
func OpenArchive(dbPath string) (*Archive, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}

	a := &Archive{db: db}
	if err := a.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize archive tables: %w", err)
	}

	return a, nil
}

func (a *Archive) initTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			started_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS utterances (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			speaker TEXT NOT NULL,
			text TEXT NOT NULL,
			label TEXT,
			score REAL,
			created_at DATETIME NOT NULL,
			FOREIGN KEY (session_id) REFERENCES sessions(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_utterances_session_id ON utterances(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_utterances_text ON utterances(text)`,
	}

	for _, query := range queries {
		if _, err := a.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute SQL: %s, error: %w", query, err)
		}
	}
	return nil
}

// SaveSession stores a finished session and returns its archive ID.
func (a *Archive) SaveSession(startedAt time.Time, history []Utterance) (string, error) {
	tx, err := a.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}

	id := uuid.New().String()
	if _, err := tx.Exec(
		"INSERT INTO sessions (id, started_at) VALUES (?, ?)",
		id, startedAt,
	); err != nil {
		tx.Rollback()
		return "", fmt.Errorf("failed to insert session: %w", err)
	}

	for _, m := range history {
		if _, err := tx.Exec(
			"INSERT INTO utterances (session_id, speaker, text, label, score, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			id, m.Speaker, m.Text, m.SentimentLabel, m.Score(), startedAt,
		); err != nil {
			tx.Rollback()
			return "", fmt.Errorf("failed to insert utterance: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit session: %w", err)
	}
	return id, nil
}

// Search returns stored utterances whose text contains keyword, newest
// first.
func (a *Archive) Search(keyword string, limit int) ([]ArchivedUtterance, error) {
	rows, err := a.db.Query(
		`SELECT session_id, speaker, text, label, score, created_at
		 FROM utterances
		 WHERE text LIKE ?
		 ORDER BY id DESC
		 LIMIT ?`,
		"%"+keyword+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search archive: %w", err)
	}
	defer rows.Close()

	var matches []ArchivedUtterance
	for rows.Next() {
		var m ArchivedUtterance
		var label sql.NullString
		var score sql.NullFloat64
		if err := rows.Scan(&m.SessionID, &m.Speaker, &m.Text, &label, &score, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan utterance: %w", err)
		}
		m.Label = label.String
		m.Score = score.Float64
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// RecentSessions lists stored sessions, newest first.
func (a *Archive) RecentSessions(limit int) ([]ArchivedSession, error) {
	rows, err := a.db.Query(
		`SELECT s.id, s.started_at, COUNT(u.id)
		 FROM sessions s
		 LEFT JOIN utterances u ON u.session_id = s.id
		 GROUP BY s.id
		 ORDER BY s.started_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []ArchivedSession
	for rows.Next() {
		var s ArchivedSession
		if err := rows.Scan(&s.ID, &s.StartedAt, &s.Messages); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// Close closes the archive database.
func (a *Archive) Close() error {
	return a.db.Close()
}
