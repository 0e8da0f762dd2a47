package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	fileName = "session.json"
)

// Store is the single owner of the locally persisted state: the upstream
// bearer token and the theme preference. Everything else the dashboard shows
// is re-fetched from the upstream API, never stored here.
//
// The store is loaded once at startup and written through on every change.
// It is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	path string
	data persisted
}

type persisted struct {
	Token string `json:"token"`
	Theme string `json:"theme"`
}

// NewStore loads the session slot from stateDir, creating the directory if
// needed. A missing or unreadable file yields an empty session rather than an
// error: the user simply has to log in again.
func NewStore(stateDir string) (*Store, error) {
	if err := os.MkdirAll(stateDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}
	s := &Store{
		path: filepath.Join(stateDir, fileName),
		data: persisted{Theme: ThemeLight},
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("could not read session file %s: %v", s.path, err)
		}
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Warnf("discarding corrupt session file %s: %v", s.path, err)
		s.data = persisted{Theme: ThemeLight}
	}
	if s.data.Theme != ThemeLight && s.data.Theme != ThemeDark {
		s.data.Theme = ThemeLight
	}
	return s, nil
}

// Token returns the stored upstream bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Token
}

// Authenticated reports whether a token is present.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// SetToken stores the token obtained from a successful login.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Token = token
	return s.persist()
}

// Clear removes the token on logout. The theme preference survives.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Token = ""
	return s.persist()
}

// Theme returns the stored theme preference.
func (s *Store) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Theme
}

// SetTheme stores the theme preference. Only "light" and "dark" are accepted.
func (s *Store) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Theme = theme
	return s.persist()
}

// persist writes the slot to disk. Callers must hold the write lock.
func (s *Store) persist() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
