// Package session holds the process-wide authentication token with an
// explicit lifecycle: loaded from durable storage at startup, set on login
// success, cleared on logout or on an authentication-rejection response.
package session

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

type Store interface {
	Token() string
	Set(token string) error
	Clear() error
}

type fileStore struct {
	mu    sync.RWMutex
	path  string
	token string
}

// NewFileStore returns a Store persisting the token to the given file. A
// missing or unreadable file means no session.
func NewFileStore(path string) Store {
	store := &fileStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("failed to read token file")
		}

		return store
	}

	store.token = strings.TrimSpace(string(data))

	return store
}

func (s *fileStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

func (s *fileStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token

	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("failed to persist token")

		return err
	}

	return nil
}

func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		log.Error().Err(err).Str("path", s.path).Msg("failed to remove token file")

		return err
	}

	return nil
}
