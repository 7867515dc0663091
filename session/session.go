package session

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/Supermarket-List/create-list/models"
)

// Store is the single source of truth for who is using the app right now.
// The identity is mirrored to durable storage so it survives restarts.
type Store struct {
	db *sql.DB

	mu   sync.RWMutex
	user *models.User
}

// New builds a Store and restores a previously saved identity, if any.
// Both the id and the display name must be present; a half-written session
// is treated as unauthenticated.
func New(db *sql.DB) (*Store, error) {
	s := &Store{db: db}

	id, err := s.get(models.StorageKeyUserID)
	if err != nil {
		return nil, err
	}
	nome, err := s.get(models.StorageKeyUserNome)
	if err != nil {
		return nil, err
	}

	if id != "" && nome != "" {
		s.user = &models.User{ID: id, Nome: nome}
	}

	return s, nil
}

// Current returns the authenticated user, or nil when logged out.
func (s *Store) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser replaces the session identity and writes it through to durable
// storage. Passing nil behaves like Logout.
func (s *Store) SetUser(user *models.User) error {
	if user == nil {
		return s.Logout()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.set(models.StorageKeyUserID, user.ID); err != nil {
		return err
	}
	if err := s.set(models.StorageKeyUserNome, user.Nome); err != nil {
		return err
	}

	s.user = user
	return nil
}

// Logout clears the durable storage entries and the in-memory identity,
// returning the app to the unauthenticated state.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"DELETE FROM storage WHERE key IN (?, ?)",
		models.StorageKeyUserID, models.StorageKeyUserNome,
	)
	if err != nil {
		return fmt.Errorf("failed to clear session storage: %w", err)
	}

	s.user = nil
	return nil
}

func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM storage WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session storage: %w", err)
	}
	return value, nil
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write session storage: %w", err)
	}
	return nil
}
