// Package store owns the durable mapping from username to user document.
// Each user is one JSON file under the data directory; there is no
// locking and no transactions, a record is expected to have a single
// writer at a time (last write wins).
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"zyra/backend/models"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNotFound          = errors.New("user not found")
	ErrBadCredentials    = errors.New("invalid credentials")
)

type Store struct {
	dir    string
	hasher Hasher
	logger *log.Logger
}

func NewStore(dir string, hasher Hasher, logger *log.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir, hasher: hasher, logger: logger}, nil
}

// SanitizeUsername derives the storage key: lowercase, alphanumeric
// plus '_' and '-', everything else dropped. Distinct usernames can
// collapse to one key ("John" and "john"); create and verify apply the
// same normalization so the collapse is consistent.
func SanitizeUsername(username string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(username) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (s *Store) filename(username string) string {
	return filepath.Join(s.dir, "user_"+SanitizeUsername(username)+".json")
}

// Exists reports whether a record is present for the sanitized key.
func (s *Store) Exists(username string) bool {
	info, err := os.Stat(s.filename(username))
	return err == nil && !info.IsDir()
}

// Create builds the default record for the username and persists it.
// The existence check and the write are two separate filesystem
// operations; with no locking available, two racing creations of the
// same username could both pass the check. Acceptable for the
// one-session-per-user model this store is designed for.
func (s *Store) Create(username, password string) error {
	if s.Exists(username) {
		return ErrDuplicateUsername
	}
	record := models.DefaultRecord(username)
	record.PasswordDigest = s.hasher.Hash(password)
	return s.Save(username, record)
}

// Verify loads the record and checks the password digest.
// ErrNotFound and ErrBadCredentials stay distinct here; the login
// handler collapses them into one message for the client.
func (s *Store) Verify(username, password string) (*models.UserRecord, error) {
	record := s.Load(username)
	if record == nil {
		return nil, ErrNotFound
	}
	if record.PasswordDigest != s.hasher.Hash(password) {
		return nil, ErrBadCredentials
	}
	return record, nil
}

// Load returns the record, or nil when the file is absent, empty or
// unreadable. A document that fails to parse is logged and treated as
// absent: availability over strictness.
func (s *Store) Load(username string) *models.UserRecord {
	if SanitizeUsername(username) == "" {
		return nil
	}
	data, err := os.ReadFile(s.filename(username))
	if err != nil || len(data) == 0 {
		return nil
	}
	var record models.UserRecord
	if err := json.Unmarshal(data, &record); err != nil {
		s.logger.Printf("corrupt user record %s: %v", s.filename(username), err)
		return nil
	}
	return &record
}

// Save serializes the full record, overwriting prior content.
// Failures are reported to the caller and never retried.
func (s *Store) Save(username string, record *models.UserRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal user record: %w", err)
	}
	if err := os.WriteFile(s.filename(username), data, 0o644); err != nil {
		s.logger.Printf("save user record %s: %v", s.filename(username), err)
		return fmt.Errorf("save user record: %w", err)
	}
	return nil
}
