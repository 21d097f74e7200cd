// Package session remembers per-video tool state between runs: which game
// log and action catalog a video was reviewed with, the playback speed, and
// where playback left off. Moment data itself is never stored here; it
// lives only in the game-log file.
package session

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/user/match-moments-cli/config"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no session exists for a video path.
var ErrNotFound = errors.New("session: not found")

// Session is the remembered state for one video.
type Session struct {
	VideoPath      string
	LogPath        string
	CatalogPath    string
	Speed          float64
	ResumePosition float64
	UpdatedAt      time.Time
}

// Store is a handle to the session database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the session database at the default location
// under the XDG data home.
func Open() (*Store, error) {
	return OpenAt(config.DefaultDBPath())
}

// OpenAt opens or creates the session database at the given path. Parent
// directories are created if they don't exist.
func OpenAt(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs the schema migrations. Safe to run multiple times.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			video_path TEXT PRIMARY KEY,
			log_path TEXT NOT NULL DEFAULT '',
			catalog_path TEXT NOT NULL DEFAULT '',
			speed REAL NOT NULL DEFAULT 1.0,
			resume_position REAL NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// Save upserts the session keyed by its video path.
func (s *Store) Save(sess Session) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (video_path, log_path, catalog_path, speed, resume_position, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(video_path) DO UPDATE SET
			log_path = excluded.log_path,
			catalog_path = excluded.catalog_path,
			speed = excluded.speed,
			resume_position = excluded.resume_position,
			updated_at = CURRENT_TIMESTAMP
	`, sess.VideoPath, sess.LogPath, sess.CatalogPath, sess.Speed, sess.ResumePosition)
	return err
}

// Get returns the session for a video path, or ErrNotFound.
func (s *Store) Get(videoPath string) (Session, error) {
	var sess Session
	err := s.db.QueryRow(`
		SELECT video_path, log_path, catalog_path, speed, resume_position, updated_at
		FROM sessions WHERE video_path = ?
	`, videoPath).Scan(
		&sess.VideoPath, &sess.LogPath, &sess.CatalogPath,
		&sess.Speed, &sess.ResumePosition, &sess.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, err
	}
	return sess, nil
}

// List returns all sessions, most recently updated first.
func (s *Store) List() ([]Session, error) {
	rows, err := s.db.Query(`
		SELECT video_path, log_path, catalog_path, speed, resume_position, updated_at
		FROM sessions ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(
			&sess.VideoPath, &sess.LogPath, &sess.CatalogPath,
			&sess.Speed, &sess.ResumePosition, &sess.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// SaveResume updates only the resume position and speed for a video,
// leaving its log and catalog association untouched.
func (s *Store) SaveResume(videoPath string, position, speed float64) error {
	res, err := s.db.Exec(`
		UPDATE sessions
		SET resume_position = ?, speed = ?, updated_at = CURRENT_TIMESTAMP
		WHERE video_path = ?
	`, position, speed, videoPath)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return s.Save(Session{VideoPath: videoPath, Speed: speed, ResumePosition: position})
	}
	return nil
}

// Delete removes the session for a video path. Deleting a missing session
// is a no-op.
func (s *Store) Delete(videoPath string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE video_path = ?`, videoPath)
	return err
}

