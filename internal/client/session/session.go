// Package session holds the process-wide bearer credential. It is a
// single-writer, multi-reader cell: only the login flow sets it, only the
// unauthorized path or an explicit logout clears it, and every outgoing
// request reads it through an accessor.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store is the credential cell, persisted to a token file so the session
// survives restarts.
type Store struct {
	mu    sync.RWMutex
	token string
	path  string
}

// NewStore opens the cell backed by the token file at path. A readable file
// primes the cell; a missing one just means logged out.
func NewStore(path string) *Store {
	s := &Store{path: path}
	if data, err := os.ReadFile(path); err == nil {
		s.token = strings.TrimSpace(string(data))
	}
	return s
}

// Token returns the current credential, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// LoggedIn reports whether a credential is present.
func (s *Store) LoggedIn() bool {
	return s.Token() != ""
}

// Set stores and persists a new credential.
func (s *Store) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("mkdir token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// Clear discards the credential and removes the token file.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	_ = os.Remove(s.path)
}

// ExpiresWithin peeks at the token's exp claim without verifying the
// signature (the backend is the authority; this only saves a doomed round
// trip). Unparseable tokens and tokens without exp report false and are
// left for the backend to reject.
func (s *Store) ExpiresWithin(d time.Duration) bool {
	token := s.Token()
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Until(exp.Time) < d
}
