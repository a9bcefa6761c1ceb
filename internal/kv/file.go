package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// fileStore implements Store with one JSON file per key under a data
// directory.
type fileStore struct {
	dir    string
	logger zerolog.Logger
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string, logger zerolog.Logger) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory %s: %w", dir, err)
	}
	return &fileStore{
		dir:    dir,
		logger: logger.With().Str("component", "file-store").Logger(),
	}, nil
}

// Get retrieves the value for a key, or ErrNotFound.
func (s *fileStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read state file")
		return nil, fmt.Errorf("failed to read state for %s: %w", key, err)
	}
	return data, nil
}

// Set stores the value for a key. The write goes to a temp file first and is
// renamed into place so a crash mid-write never leaves a truncated snapshot.
func (s *fileStore) Set(ctx context.Context, key string, value []byte) error {
	path := s.path(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write state file")
		return fmt.Errorf("failed to write state for %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to replace state file")
		return fmt.Errorf("failed to replace state for %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *fileStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete state for %s: %w", key, err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *fileStore) Close() error {
	return nil
}

// path maps a key to a file name. Colons in namespaced keys ("cart:u1") are
// not portable across filesystems so they are replaced.
func (s *fileStore) path(key string) string {
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(s.dir, name)
}
