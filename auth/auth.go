// Package auth is the single source of truth for the current session
// credentials and minimal profile, backed by device storage.
package auth

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// SessionStore is the durable storage collaborator for credentials.
type SessionStore interface {
	SaveAuth(blob []byte) error
	GetAuth() ([]byte, error)
	ClearAuth() error
}

// Session holds the credential pair and the minimal profile fields kept
// client-side. One session is active at a time.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profile_image"`
	Premium      bool   `json:"premium"`
}

// Manager owns the in-memory session and mirrors it to durable storage. The
// in-memory state stays authoritative when storage fails; the failure is
// logged only.
type Manager struct {
	mu      sync.Mutex
	store   SessionStore
	current Session
}

// NewManager restores any persisted session from the store.
func NewManager(store SessionStore) *Manager {
	m := &Manager{store: store}

	blob, err := store.GetAuth()
	if err != nil {
		slog.Error("failed to read persisted session", slog.Any("error", err))
		return m
	}

	if len(blob) == 0 {
		return m
	}

	if err := json.Unmarshal(blob, &m.current); err != nil {
		slog.Error("discarding undecodable session", slog.Any("error", err))
	}

	return m
}

// Option adjusts the optional profile fields of a new session.
type Option func(*Session)

func WithPremium(premium bool) Option {
	return func(s *Session) {
		s.Premium = premium
	}
}

func WithProfile(nickname, profileImage string) Option {
	return func(s *Session) {
		s.Nickname = nickname
		s.ProfileImage = profileImage
	}
}

// SetAuthData replaces the active session with the given credential pair and
// persists it. Any existing session is overwritten.
func (m *Manager) SetAuthData(access, refresh, userID string, opts ...Option) {
	sess := Session{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       userID,
	}

	for _, opt := range opts {
		opt(&sess)
	}

	m.mu.Lock()
	// carry profile fields forward through a plain token refresh
	if sess.UserID == m.current.UserID && sess.Nickname == "" {
		sess.Nickname = m.current.Nickname
		sess.ProfileImage = m.current.ProfileImage
		sess.Premium = m.current.Premium
	}

	m.current = sess
	m.mu.Unlock()

	m.persist(sess)
}

// Logout clears the persisted credentials and resets the in-memory session.
// Safe to call when no session is active.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.current = Session{}
	m.mu.Unlock()

	if err := m.store.ClearAuth(); err != nil {
		slog.Error("failed to clear persisted session", slog.Any("error", err))
	}
}

// Current returns a copy of the active session.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.current
}

// SignedIn reports whether an access token is present.
func (m *Manager) SignedIn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.current.AccessToken != ""
}

// UpdateProfile merges profile fields into the active session and persists
// the result.
func (m *Manager) UpdateProfile(nickname, profileImage string, premium bool) {
	m.mu.Lock()

	m.current.Nickname = nickname
	m.current.ProfileImage = profileImage
	m.current.Premium = premium
	sess := m.current

	m.mu.Unlock()

	m.persist(sess)
}

func (m *Manager) persist(sess Session) {
	blob, err := json.Marshal(sess)
	if err != nil {
		slog.Error("failed to marshal session", slog.Any("error", err))
		return
	}

	if err := m.store.SaveAuth(blob); err != nil {
		slog.Error("failed to persist session", slog.Any("error", err))
	}
}
