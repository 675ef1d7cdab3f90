package duckdb

import (
	"fmt"
	"os"
	"time"
)

// FileFingerprint holds stat-based identity for a processed metrics file.
type FileFingerprint struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// StatFile creates a FileFingerprint from an on-disk file.
func StatFile(path string) (FileFingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileFingerprint{}, err
	}
	return FileFingerprint{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// RecordSources upserts the fingerprints of the metrics files that fed
// the current database contents.
func (s *Store) RecordSources(files []FileFingerprint) error {
	for _, f := range files {
		if _, err := s.db.Exec("DELETE FROM source_files WHERE path=?", f.Path); err != nil {
			return fmt.Errorf("clear source %s: %w", f.Path, err)
		}
		if _, err := s.db.Exec(
			"INSERT INTO source_files (path, size, mod_time) VALUES (?, ?, ?)",
			f.Path, f.Size, f.ModTime); err != nil {
			return fmt.Errorf("record source %s: %w", f.Path, err)
		}
	}
	return nil
}

// Sources returns the fingerprints of all recorded metrics files.
func (s *Store) Sources() ([]FileFingerprint, error) {
	rows, err := s.db.Query("SELECT path, size, mod_time FROM source_files ORDER BY path")
	if err != nil {
		return nil, fmt.Errorf("query sources: %w", err)
	}
	defer rows.Close()

	var files []FileFingerprint
	for rows.Next() {
		var f FileFingerprint
		if err := rows.Scan(&f.Path, &f.Size, &f.ModTime); err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sources: %w", err)
	}
	return files, nil
}
