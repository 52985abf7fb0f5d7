// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps the session in a JSON file on disk, so it survives
// client restarts. The file is written with 0600 permissions: the token
// inside grants full account access and must not be readable by other
// local users.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore persisting to the given path. Parent
// directories are created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save implements [Store]. The session is written to a temporary file in
// the same directory and renamed into place, so a crash mid-write never
// leaves a truncated session behind.
func (f *FileStore) Save(session Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("error creating session directory: %w", err)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	tmpPath := f.path + ".tmp"
	if err = os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("error writing session file: %w", err)
	}
	if err = os.Rename(tmpPath, f.path); err != nil {
		return fmt.Errorf("error replacing session file: %w", err)
	}

	return nil
}

// Load implements [Store].
func (f *FileStore) Load() (Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, fmt.Errorf("error reading session file: %w", err)
	}

	var session Session
	if err = json.Unmarshal(data, &session); err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrSessionMalformed, err)
	}
	if session.IsZero() {
		return Session{}, ErrSessionMalformed
	}

	return session, nil
}

// Clear implements [Store]. A missing file counts as already cleared.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing session file: %w", err)
	}

	return nil
}
