// Package store keeps the site's small amount of state in SQLite: hashed
// visitor records, contact-form messages and globe pin selections.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a row addressed by id does not exist.
var ErrNotFound = errors.New("not found")

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_timestamp ON visitors (timestamp);

CREATE TABLE IF NOT EXISTS messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	body TEXT NOT NULL,
	mailed INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS selections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	location TEXT NOT NULL,
	hashed_ip TEXT,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS selections_location ON selections (location);
`

// Visitor is a privacy-conscious page view: the IP is only ever stored hashed.
type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Message is a contact-form submission.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	Mailed    bool      `json:"mailed"`
	CreatedAt time.Time `json:"created_at"`
}

// LocationStat counts how often a globe location was selected.
type LocationStat struct {
	Location   string `json:"location"`
	Selections int64  `json:"selections"`
}

type Stats struct {
	TotalVisitors    int64          `json:"total_visitors"`
	UniqueVisitors   int64          `json:"unique_visitors"`
	VisitorsToday    int64          `json:"visitors_today"`
	VisitorsThisWeek int64          `json:"visitors_this_week"`
	TotalMessages    int64          `json:"total_messages"`
	TotalSelections  int64          `json:"total_selections"`
	TopLocations     []LocationStat `json:"top_locations"`
	RecentVisitors   []Visitor      `json:"recent_visitors"`
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the SQLite database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, s.now().Unix())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// CleanupVisitors deletes visitor rows older than retention and returns how
// many were removed.
func (s *Store) CleanupVisitors(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).Unix()
	result, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	n, _ := result.RowsAffected()
	return n, nil
}

func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query visitors: %w", err)
	}
	defer rows.Close()

	var visitors []Visitor
	for rows.Next() {
		var v Visitor
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

// SaveMessage stores a contact message and returns its id.
func (s *Store) SaveMessage(ctx context.Context, m Message) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (name, email, body, mailed, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, m.Name, m.Email, m.Body, m.Mailed, s.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("save message: %w", err)
	}
	return result.LastInsertId()
}

// MarkMailed flags a stored message as delivered by mail.
func (s *Store) MarkMailed(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `UPDATE messages SET mailed = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark mailed: %w", err)
	}
	return expectOne(result)
}

func (s *Store) Messages(ctx context.Context, limit int) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, body, mailed, created_at
		FROM messages
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		var ts int64
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Mailed, &ts); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.CreatedAt = time.Unix(ts, 0).UTC()
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (s *Store) DeleteMessage(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return expectOne(result)
}

// RecordSelection counts a visitor picking a location on the globe.
func (s *Store) RecordSelection(ctx context.Context, location, hashedIP string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO selections (location, hashed_ip, created_at)
		VALUES (?, ?, ?)
	`, location, hashedIP, s.now().Unix())
	if err != nil {
		return fmt.Errorf("record selection: %w", err)
	}
	return nil
}

func (s *Store) TopLocations(ctx context.Context, limit int) ([]LocationStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT location, COUNT(*) AS n
		FROM selections
		GROUP BY location
		ORDER BY n DESC, location ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top locations: %w", err)
	}
	defer rows.Close()

	var stats []LocationStat
	for rows.Next() {
		var ls LocationStat
		if err := rows.Scan(&ls.Location, &ls.Selections); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		stats = append(stats, ls)
	}
	return stats, rows.Err()
}

// Stats gathers the admin dashboard numbers.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{midnight.Unix()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{weekAgo.Unix()}},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM messages`, nil},
		{&stats.TotalSelections, `SELECT COUNT(*) FROM selections`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("count: %w", err)
		}
	}

	var err error
	if stats.TopLocations, err = s.TopLocations(ctx, 10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.RecentVisitors(ctx, 50); err != nil {
		return nil, err
	}
	return stats, nil
}

func expectOne(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
