package connector

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/CharlotteLevula/my-health-project/internal/domain/polar"
)

type fileTokenStore struct {
	path string
}

// NewFileTokenStore creates a TokenStore backed by a JSON file at path
func NewFileTokenStore(path string) polar.TokenStore {
	return &fileTokenStore{path: path}
}

func (s *fileTokenStore) Load() (*polar.Token, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", polar.ErrTokenNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to read token file %s: %w", s.path, err)
	}

	var token polar.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("%w: %s", polar.ErrTokenCorrupted, s.path)
	}

	return &token, nil
}

func (s *fileTokenStore) Save(token *polar.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file %s: %w", s.path, err)
	}
	return nil
}
