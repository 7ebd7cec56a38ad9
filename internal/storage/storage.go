// Package storage persists finished runs for the leaderboard.
// SQLite (pure-Go modernc.org/sqlite) is the default backend; a postgres://
// URL selects PostgreSQL through lib/pq for shared server installs.
package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultLimit is the leaderboard size used when a caller passes limit <= 0.
const DefaultLimit = 10

// Store manages the database connection for score persistence.
type Store struct {
	db      *sql.DB
	dialect dialect
}

// ScoreEntry is a single finished run.
type ScoreEntry struct {
	ID         int64
	Name       string // three-letter initials
	Difficulty string
	Animal     string
	Score      int
	Level      int
	Seed       uint32
	CreatedAt  time.Time
}

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

func (d dialect) String() string {
	if d == dialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

// Open opens the score store at dsn. A postgres:// or postgresql:// URL
// connects to PostgreSQL; anything else is treated as a SQLite file path.
func Open(dsn string) (*Store, error) {
	if IsPostgresDSN(dsn) {
		return openPostgres(dsn)
	}
	return openSQLite(dsn)
}

// IsPostgresDSN reports whether dsn names a PostgreSQL server.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Backend returns the name of the database backend in use.
func (s *Store) Backend() string {
	return s.dialect.String()
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// rebind rewrites ? placeholders into the dialect's form.
func (s *Store) rebind(query string) string {
	if s.dialect != dialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeName turns free text into leaderboard initials: the first three
// letters, upper-cased. Empty input gives "YOU".
func NormalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() == 3 {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "YOU"
	}
	return b.String()
}

// SaveScore records a finished run and returns its ID.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	name := NormalizeName(e.Name)

	if s.dialect == dialectPostgres {
		var id int64
		err := s.db.QueryRow(
			s.rebind(`INSERT INTO scores (name, difficulty, animal, score, level, seed)
			 VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
			name, e.Difficulty, e.Animal, e.Score, e.Level, int64(e.Seed),
		).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot save score: %w", err)
		}
		return id, nil
	}

	result, err := s.db.Exec(
		`INSERT INTO scores (name, difficulty, animal, score, level, seed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		name, e.Difficulty, e.Animal, e.Score, e.Level, int64(e.Seed),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const selectScores = `SELECT id, name, difficulty, animal, score, level, seed, created_at FROM scores`

// TopScores returns the best runs for a difficulty, highest score first.
// Ties keep insertion order.
func (s *Store) TopScores(difficulty string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		s.rebind(selectScores+` WHERE difficulty = ? ORDER BY score DESC, id ASC LIMIT ?`),
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

// AllScores returns every run for a difficulty, or for all difficulties
// when difficulty is empty.
func (s *Store) AllScores(difficulty string) ([]ScoreEntry, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if difficulty == "" {
		rows, err = s.db.Query(selectScores + ` ORDER BY score DESC, id ASC`)
	} else {
		rows, err = s.db.Query(
			s.rebind(selectScores+` WHERE difficulty = ? ORDER BY score DESC, id ASC`),
			difficulty,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

// HighScore returns the best score for a difficulty, or 0 if none exist.
func (s *Store) HighScore(difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		s.rebind("SELECT MAX(score) FROM scores WHERE difficulty = ?"),
		difficulty,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Qualifies reports whether score would enter the top limit for a difficulty.
func (s *Store) Qualifies(difficulty string, score, limit int) (bool, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	top, err := s.TopScores(difficulty, limit)
	if err != nil {
		return false, err
	}
	if len(top) < limit {
		return score > 0, nil
	}
	return score > top[len(top)-1].Score, nil
}

// ClearScores deletes all runs for a difficulty, or every run when
// difficulty is empty.
func (s *Store) ClearScores(difficulty string) error {
	var err error
	if difficulty == "" {
		_, err = s.db.Exec("DELETE FROM scores")
	} else {
		_, err = s.db.Exec(s.rebind("DELETE FROM scores WHERE difficulty = ?"), difficulty)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e         ScoreEntry
			seed      int64
			createdAt any
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Difficulty, &e.Animal, &e.Score, &e.Level, &seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Seed = uint32(seed)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTime handles drivers that return timestamps as time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		return parseTimeString(t)
	case []byte:
		return parseTimeString(string(t))
	}
	return time.Time{}
}

func parseTimeString(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano, "2006-01-02T15:04:05Z"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
