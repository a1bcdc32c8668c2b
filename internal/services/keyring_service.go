package services

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"

	"github.com/99designs/keyring"
)

const serviceName = "elemental"

const apiKeyPrefix = "api-key:"

// OpenKeyring opens the OS keyring for the app. backend may name a single
// keyring backend (for example "file"); empty lets the library pick. The
// encrypted file backend lives under dataDir and is unlocked with password.
func OpenKeyring(backend, dataDir, password string) (keyring.Keyring, error) {
	cfg := keyring.Config{
		ServiceName:      serviceName,
		KeychainName:     serviceName,
		FileDir:          filepath.Join(dataDir, "keyring"),
		FilePasswordFunc: keyring.FixedStringPrompt(password),
	}
	if backend != "" {
		cfg.AllowedBackends = []keyring.BackendType{keyring.BackendType(backend)}
	}
	return keyring.Open(cfg)
}

type KeyringService struct {
	ring keyring.Keyring
}

func NewKeyringService(ring keyring.Keyring) *KeyringService {
	return &KeyringService{ring: ring}
}

func (s *KeyringService) StoreApiKey(provider string, apiKey string) error {
	if apiKey == "" {
		return errors.New("API key is empty")
	}
	if provider == "" {
		return errors.New("provider is required")
	}
	return s.ring.Set(keyring.Item{
		Key:         apiKeyPrefix + provider,
		Data:        []byte(apiKey),
		Label:       provider + " API key",
		Description: "API key for " + provider + " used by Elemental",
	})
}

// GetApiKey returns the stored key, or keyring.ErrKeyNotFound.
func (s *KeyringService) GetApiKey(provider string) (string, error) {
	if provider == "" {
		return "", errors.New("provider is required")
	}
	item, err := s.ring.Get(apiKeyPrefix + provider)
	if err != nil {
		return "", err
	}
	return string(item.Data), nil
}

func (s *KeyringService) HasApiKey(provider string) bool {
	_, err := s.GetApiKey(provider)
	return err == nil
}

func (s *KeyringService) DeleteApiKey(provider string) error {
	if provider == "" {
		return errors.New("provider is required")
	}
	return s.ring.Remove(apiKeyPrefix + provider)
}

// ListApiKeys returns the providers that currently have a key stored.
func (s *KeyringService) ListApiKeys() ([]map[string]string, error) {
	keys, err := s.ring.Keys()
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)

	results := make([]map[string]string, 0, len(keys))
	for _, key := range keys {
		provider, ok := strings.CutPrefix(key, apiKeyPrefix)
		if !ok {
			continue
		}
		results = append(results, map[string]string{
			"provider":    provider,
			"label":       provider + " API key",
			"description": "API key for " + provider + " used by Elemental",
		})
	}
	return results, nil
}
