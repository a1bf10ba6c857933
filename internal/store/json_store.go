package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var jsonKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// JSONStore keeps one pretty-printed JSON file per key inside a
// directory. Writes go through a temp file and rename so a crash never
// leaves a half-written slice behind.
type JSONStore struct {
	dir string
}

// NewJSONStore creates the state directory if needed.
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

func (s *JSONStore) path(key string) (string, error) {
	if !jsonKeyPattern.MatchString(key) {
		return "", fmt.Errorf("invalid state key: %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *JSONStore) Load(key string, into any) (bool, error) {
	path, err := s.path(key)
	if err != nil {
		return false, err
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read state %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return false, fmt.Errorf("decode state %q: %w", key, err)
	}
	return true, nil
}

func (s *JSONStore) Save(key string, v any) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state %q: %w", key, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write state %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace state %q: %w", key, err)
	}
	return nil
}

func (s *JSONStore) Close() error { return nil }
