// Package archive provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package archive

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the game archive.
type Store struct {
	db *sql.DB
}

// GameRecord is the persisted outcome of one game.
type GameRecord struct {
	ID        int64
	SessionID string
	RoomID    string
	Strategy  string
	OwnTeam   string // "ONE" or "TWO", empty when observing
	Winner    string // winning team marker, empty for a draw
	ScoreOne  int
	ScoreTwo  int
	Turns     int
	Duration  int // seconds from first state to result
	CreatedAt time.Time
}

// Won reports whether the archived session's own team won.
func (r GameRecord) Won() bool {
	return r.OwnTeam != "" && r.OwnTeam == r.Winner
}

// Open creates or opens a SQLite database at the given path. It creates
// the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("archive: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("archive: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("archive: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			room_id TEXT NOT NULL,
			strategy TEXT NOT NULL,
			own_team TEXT NOT NULL DEFAULT '',
			winner TEXT NOT NULL DEFAULT '',
			score_one INTEGER NOT NULL DEFAULT 0,
			score_two INTEGER NOT NULL DEFAULT 0,
			turns INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_session ON games(session_id);
		CREATE INDEX IF NOT EXISTS idx_games_recent ON games(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveGame inserts one finished game and returns its row id.
func (s *Store) SaveGame(rec GameRecord) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO games (session_id, room_id, strategy, own_team, winner,
			score_one, score_two, turns, duration_secs)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.RoomID, rec.Strategy, rec.OwnTeam, rec.Winner,
		rec.ScoreOne, rec.ScoreTwo, rec.Turns, rec.Duration)
	if err != nil {
		return 0, fmt.Errorf("archive: cannot save game: %w", err)
	}
	return res.LastInsertId()
}

// RecentGames returns the newest games first, up to limit.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, session_id, room_id, strategy, own_team, winner,
			score_one, score_two, turns, duration_secs, created_at
		FROM games ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("archive: cannot query games: %w", err)
	}
	defer rows.Close()

	var out []GameRecord
	for rows.Next() {
		var rec GameRecord
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.RoomID, &rec.Strategy,
			&rec.OwnTeam, &rec.Winner, &rec.ScoreOne, &rec.ScoreTwo,
			&rec.Turns, &rec.Duration, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("archive: cannot scan game: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// WinRate returns wins and total finished games for one strategy.
func (s *Store) WinRate(strategy string) (wins, total int, err error) {
	err = s.db.QueryRow(`
		SELECT
			COUNT(CASE WHEN own_team != '' AND own_team = winner THEN 1 END),
			COUNT(*)
		FROM games WHERE strategy = ?`, strategy).Scan(&wins, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("archive: cannot compute win rate: %w", err)
	}
	return wins, total, nil
}
