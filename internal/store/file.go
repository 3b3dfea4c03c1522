package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// FileStore keeps the score list as a JSON array in a single file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path. The file need not exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the score list. A missing or malformed file yields an empty list.
func (s *FileStore) Load(_ context.Context) []int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("high scores unreadable", "path", s.path, "error", err)
		}
		return []int{}
	}

	var scores []int
	if err := json.Unmarshal(data, &scores); err != nil {
		slog.Warn("high scores corrupt, starting fresh", "path", s.path, "error", err)
		return []int{}
	}
	if scores == nil {
		return []int{}
	}
	return normalize(scores)
}

// AddAndPersist inserts the entry's score and rewrites the file.
func (s *FileStore) AddAndPersist(_ context.Context, e Entry, existing []int) []int {
	scores := Insert(existing, e.Score)
	if err := s.write(scores); err != nil {
		slog.Warn("failed to save high scores", "path", s.path, "error", err)
	}
	return scores
}

// write replaces the file atomically via a temp file in the same directory.
func (s *FileStore) write(scores []int) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".high_scores-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}
