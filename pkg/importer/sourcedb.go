package importer

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Source is a contact feed a directory is imported from, and a row of the
// import_sources table.
type Source struct {
	ID          string  `yaml:"id" json:"id"`
	Adapter     string  `yaml:"adapter" json:"adapter"`
	DirectoryID string  `yaml:"directory" json:"directory"`
	Region      string  `yaml:"region,omitempty" json:"region,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	SourceURL   string  `yaml:"url" json:"url"`
	License     string  `yaml:"license,omitempty" json:"license,omitempty"`
	LastCheck   *int64  `yaml:"-" json:"last_check,omitempty"`
	LastStatus  *int    `yaml:"-" json:"last_status,omitempty"`
	LastError   *string `yaml:"-" json:"last_error,omitempty"`
	UpdatedAt   int64   `yaml:"-" json:"updated_at"`
}

// SourceDB manages the import_sources SQLite table.
type SourceDB struct {
	db *sql.DB
}

// OpenSourceDB opens (or creates) the SQLite database at path and ensures the
// import_sources table exists.
func OpenSourceDB(path string) (*SourceDB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open source db: %w", err)
	}

	const ddl = `CREATE TABLE IF NOT EXISTS import_sources (
		source_id    TEXT PRIMARY KEY,
		adapter_id   TEXT NOT NULL,
		directory_id TEXT NOT NULL,
		region       TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		source_url   TEXT NOT NULL,
		license      TEXT NOT NULL DEFAULT '',
		last_check   INTEGER,
		last_status  INTEGER,
		last_error   TEXT,
		updated_at   INTEGER NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create import_sources table: %w", err)
	}

	return &SourceDB{db: db}, nil
}

// Close closes the database.
func (s *SourceDB) Close() error {
	return s.db.Close()
}

// Seed inserts a row per source. Existing rows are left untouched so that
// URLs changed with SetURL survive restarts.
func (s *SourceDB) Seed(sources []Source) error {
	const q = `INSERT OR IGNORE INTO import_sources
		(source_id, adapter_id, directory_id, region, description, source_url, license, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().Unix()
	for _, src := range sources {
		if src.ID == "" {
			return fmt.Errorf("seed: source without id (url %s)", src.SourceURL)
		}
		if _, err := s.db.Exec(q, src.ID, src.Adapter, src.DirectoryID, src.Region,
			src.Description, src.SourceURL, src.License, now); err != nil {
			return fmt.Errorf("seed %s: %w", src.ID, err)
		}
	}
	return nil
}

const selectSource = `SELECT source_id, adapter_id, directory_id, region, description,
	source_url, license, last_check, last_status, last_error, updated_at
	FROM import_sources`

type scanner interface {
	Scan(dest ...any) error
}

func scanSource(row scanner) (Source, error) {
	var src Source
	err := row.Scan(&src.ID, &src.Adapter, &src.DirectoryID, &src.Region, &src.Description,
		&src.SourceURL, &src.License, &src.LastCheck, &src.LastStatus, &src.LastError, &src.UpdatedAt)
	return src, err
}

// GetSource returns the row for a source ID.
func (s *SourceDB) GetSource(id string) (Source, error) {
	src, err := scanSource(s.db.QueryRow(selectSource+` WHERE source_id = ?`, id))
	if err != nil {
		return Source{}, fmt.Errorf("get source %s: %w", id, err)
	}
	return src, nil
}

// GetURL returns the current URL for a source ID.
func (s *SourceDB) GetURL(id string) (string, error) {
	var url string
	err := s.db.QueryRow(`SELECT source_url FROM import_sources WHERE source_id = ?`, id).Scan(&url)
	if err != nil {
		return "", fmt.Errorf("get url for %s: %w", id, err)
	}
	return url, nil
}

// SetURL updates the URL of a source and records the change timestamp.
func (s *SourceDB) SetURL(id, url string) error {
	res, err := s.db.Exec(
		`UPDATE import_sources SET source_url = ?, updated_at = ? WHERE source_id = ?`,
		url, time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("set url for %s: %w", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("source %s not found in import_sources", id)
	}
	return nil
}

// UpdateCheck persists the result of an availability check.
func (s *SourceDB) UpdateCheck(id string, status int, checkErr string) error {
	now := time.Now().Unix()
	var errPtr *string
	if checkErr != "" {
		errPtr = &checkErr
	}
	_, err := s.db.Exec(
		`UPDATE import_sources SET last_check = ?, last_status = ?, last_error = ? WHERE source_id = ?`,
		now, status, errPtr, id,
	)
	if err != nil {
		return fmt.Errorf("update check for %s: %w", id, err)
	}
	return nil
}

// ListSources returns all rows ordered by source ID.
func (s *SourceDB) ListSources() ([]Source, error) {
	rows, err := s.db.Query(selectSource + ` ORDER BY source_id`)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	defer rows.Close()

	var sources []Source
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		sources = append(sources, src)
	}
	return sources, rows.Err()
}
