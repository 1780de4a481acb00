// Package storage provides the durable key/value primitive the stores persist through.
package storage

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// ErrKeyNotFound is returned by Get when the key has never been set or was removed.
var ErrKeyNotFound = errors.New("key not found")

// Store is a synchronous string-keyed durable store.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
	Close() error
}

// GetJSON decodes the value at key into v. It reports false when the key is absent.
func GetJSON(s Store, key string, v any) (bool, error) {
	data, err := s.Get(key)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it at key.
func SetJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Set(key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
