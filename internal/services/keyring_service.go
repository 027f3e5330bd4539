package services

import (
	"errors"
	"sync"

	"github.com/99designs/keyring"
)

const keyringServiceName = "codesage"

// ApiKeyStore is the credential surface the review service depends on.
type ApiKeyStore interface {
	GetApiKey(provider string) (string, error)
}

// KeyringService stores provider API keys in the OS keychain.
type KeyringService struct {
	mu   sync.Mutex
	ring keyring.Keyring
}

func NewKeyringService() *KeyringService {
	return &KeyringService{}
}

func (s *KeyringService) Startup() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ring != nil {
		return nil
	}
	ring, err := keyring.Open(keyring.Config{
		ServiceName: keyringServiceName,
	})
	if err != nil {
		return err
	}
	s.ring = ring
	return nil
}

func (s *KeyringService) open() (keyring.Keyring, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ring == nil {
		return nil, errors.New("keyring not initialized")
	}
	return s.ring, nil
}

func (s *KeyringService) StoreApiKey(provider string, apiKey string) error {
	if provider == "" {
		return errors.New("provider is required")
	}
	if apiKey == "" {
		return errors.New("API key is empty")
	}
	ring, err := s.open()
	if err != nil {
		return err
	}
	return ring.Set(keyring.Item{
		Key:   provider,
		Label: provider + " API key",
		Data:  []byte(apiKey),
	})
}

func (s *KeyringService) GetApiKey(provider string) (string, error) {
	if provider == "" {
		return "", errors.New("provider is required")
	}
	ring, err := s.open()
	if err != nil {
		return "", err
	}
	item, err := ring.Get(provider)
	if err != nil {
		return "", err
	}
	return string(item.Data), nil
}

func (s *KeyringService) DeleteApiKey(provider string) error {
	if provider == "" {
		return errors.New("provider is required")
	}
	ring, err := s.open()
	if err != nil {
		return err
	}
	return ring.Remove(provider)
}

// ListApiKeys returns metadata (not the keys themselves) for every provider
// with a stored credential, for display in the settings screen.
func (s *KeyringService) ListApiKeys() ([]map[string]string, error) {
	ring, err := s.open()
	if err != nil {
		return nil, err
	}
	providers, err := ring.Keys()
	if err != nil {
		return nil, err
	}

	var results []map[string]string
	for _, provider := range providers {
		results = append(results, map[string]string{
			"provider":    provider,
			"label":       provider + " API key",
			"description": "API key for " + provider + " used by CodeSage",
		})
	}
	return results, nil
}
