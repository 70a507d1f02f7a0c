// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

// Game modes stored with each record.
const (
	ModeComputer = "computer"
	ModeHotSeat  = "hot_seat"
)

// Where a game was played.
const (
	SourceLocal = "local"
	SourceSSH   = "ssh"
)

// Store manages the SQLite database connection for game results.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID        int64
	GameID    string // uuid, generated by SaveResult when empty
	Dimension int
	Mode      string // ModeComputer or ModeHotSeat
	Strategy  string // empty in hot-seat games
	HumanMark string
	FirstMark string
	Outcome   string // tictactoe.Outcome.Key()
	Winner    string // "X", "O" or empty for a tie
	Moves     int
	Duration  int // seconds
	Source    string
	Player    string // ssh user name, empty for local games
	Board     string // final board, Board.Compact() encoding
	CreatedAt time.Time
}

// NewRecord builds a record from a finished session.
func NewRecord(s *tictactoe.Session, strategy string, duration time.Duration) GameRecord {
	snap := s.Snapshot()
	r := GameRecord{
		Dimension: snap.Dimension,
		Mode:      ModeComputer,
		Strategy:  strategy,
		HumanMark: snap.Human.String(),
		FirstMark: snap.First.String(),
		Outcome:   snap.Outcome.Key(),
		Moves:     len(snap.Moves),
		Duration:  int(duration.Round(time.Second) / time.Second),
		Source:    SourceLocal,
		Board:     snap.Board,
	}
	if s.HotSeat() {
		r.Mode = ModeHotSeat
		r.Strategy = ""
	}
	if snap.Winner.IsPlayer() {
		r.Winner = snap.Winner.String()
	}
	return r
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL UNIQUE,
			dimension INTEGER NOT NULL,
			mode TEXT NOT NULL,
			strategy TEXT NOT NULL DEFAULT '',
			human_mark TEXT NOT NULL,
			first_mark TEXT NOT NULL,
			outcome TEXT NOT NULL,
			winner TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			source TEXT NOT NULL DEFAULT 'local',
			player TEXT NOT NULL DEFAULT '',
			board TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_dimension ON results(dimension);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns its game ID.
func (s *Store) SaveResult(r GameRecord) (string, error) {
	if r.Outcome == "" || r.Outcome == tictactoe.OutcomeNone.Key() {
		return "", errors.New("storage: cannot save a game that has not ended")
	}
	if r.GameID == "" {
		r.GameID = uuid.NewString()
	}
	if r.Source == "" {
		r.Source = SourceLocal
	}

	_, err := s.db.Exec(
		`INSERT INTO results
		 (game_id, dimension, mode, strategy, human_mark, first_mark, outcome, winner, moves, duration_secs, source, player, board)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Dimension, r.Mode, r.Strategy, r.HumanMark, r.FirstMark,
		r.Outcome, r.Winner, r.Moves, r.Duration, r.Source, r.Player, r.Board,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}
	return r.GameID, nil
}

const selectResult = `SELECT id, game_id, dimension, mode, strategy, human_mark, first_mark,
	outcome, winner, moves, duration_secs, source, player, board, created_at FROM results`

// RecentResults retrieves the most recent games, newest first.
func (s *Store) RecentResults(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(selectResult+` ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var r GameRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.GameID, &r.Dimension, &r.Mode, &r.Strategy, &r.HumanMark, &r.FirstMark,
			&r.Outcome, &r.Winner, &r.Moves, &r.Duration, &r.Source, &r.Player, &r.Board, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ResultByID retrieves a game by its game ID. Returns nil if not found.
func (s *Store) ResultByID(gameID string) (*GameRecord, error) {
	var r GameRecord
	var createdAt any
	err := s.db.QueryRow(selectResult+` WHERE game_id = ?`, gameID).Scan(
		&r.ID, &r.GameID, &r.Dimension, &r.Mode, &r.Strategy, &r.HumanMark, &r.FirstMark,
		&r.Outcome, &r.Winner, &r.Moves, &r.Duration, &r.Source, &r.Player, &r.Board, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// ClearResults deletes every recorded game.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats contains aggregated results for one board dimension.
type Stats struct {
	Dimension    int
	Games        int
	HumanWins    int
	ComputerWins int
	Ties         int
	XWins        int // hot-seat games
	OWins        int // hot-seat games
	AvgMoves     float64
	LastPlayed   time.Time
}

const selectStats = `SELECT dimension, COUNT(*),
	COALESCE(SUM(outcome = 'human_won'), 0),
	COALESCE(SUM(outcome = 'computer_won'), 0),
	COALESCE(SUM(outcome = 'tie'), 0),
	COALESCE(SUM(outcome = 'x_won'), 0),
	COALESCE(SUM(outcome = 'o_won'), 0),
	COALESCE(AVG(moves), 0),
	MAX(created_at)
	FROM results`

// Stats retrieves aggregated results for boards of the given dimension.
func (s *Store) Stats(dimension int) (*Stats, error) {
	rows, err := s.db.Query(selectStats+` WHERE dimension = ? GROUP BY dimension`, dimension)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats, err := scanStats(rows)
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return &Stats{Dimension: dimension}, nil
	}
	return stats[0], nil
}

// AllStats retrieves statistics for every dimension that has been played, keyed by dimension.
func (s *Store) AllStats() (map[int]*Stats, error) {
	rows, err := s.db.Query(selectStats + ` GROUP BY dimension`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	list, err := scanStats(rows)
	if err != nil {
		return nil, err
	}
	stats := make(map[int]*Stats, len(list))
	for _, st := range list {
		stats[st.Dimension] = st
	}
	return stats, nil
}

func scanStats(rows *sql.Rows) ([]*Stats, error) {
	var out []*Stats
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Dimension, &st.Games, &st.HumanWins, &st.ComputerWins, &st.Ties,
			&st.XWins, &st.OWins, &st.AvgMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		out = append(out, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
