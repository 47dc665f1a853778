package session

import (
	"os"
	"path/filepath"
)

// Store persists the admin session token in a single file under the
// config directory. The backend is the sole authority on token validity;
// the store only tracks presence.
type Store struct {
	TokenFile string
}

func NewStore(configDir string) *Store {
	return &Store{
		TokenFile: filepath.Join(configDir, ".admin_token"),
	}
}

func (s *Store) Set(token string) error {
	return os.WriteFile(s.TokenFile, []byte(token), 0600) // Restricted permissions
}

func (s *Store) Get() (string, error) {
	data, err := os.ReadFile(s.TokenFile)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Store) Clear() error {
	if _, err := os.Stat(s.TokenFile); os.IsNotExist(err) {
		return nil // Nothing to clear
	}
	return os.Remove(s.TokenFile)
}

func (s *Store) IsPresent() bool {
	info, err := os.Stat(s.TokenFile)
	if err != nil {
		return false
	}
	return info.Size() > 0
}
