package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrDuplicateID is returned when a credential id appears twice.
	ErrDuplicateID = errors.New("config: duplicate credential id")

	// ErrInvalidCredential is returned when a credential entry is missing
	// its id or key.
	ErrInvalidCredential = errors.New("config: invalid credential")
)

// Credential is one entry of the credential table.
type Credential struct {
	ID        string `yaml:"id"`
	Key       string `yaml:"key"`
	Algorithm string `yaml:"algorithm"`
	User      string `yaml:"user"`

	// Disabled keeps the entry on file while refusing to authenticate it.
	Disabled bool `yaml:"disabled"`
}

type credentialFile struct {
	Credentials []Credential `yaml:"credentials"`
}

// LoadCredentials reads and validates the credential table at path.
func LoadCredentials(path string) ([]Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading credentials: %w", err)
	}

	return ParseCredentials(data)
}

// ParseCredentials decodes and validates a YAML credential table. Unknown
// fields are rejected.
func ParseCredentials(data []byte) ([]Credential, error) {
	var file credentialFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("config: decoding credentials: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Credentials))
	for i, c := range file.Credentials {
		if c.ID == "" {
			return nil, fmt.Errorf("%w: entry %d has no id", ErrInvalidCredential, i)
		}

		if c.Key == "" {
			return nil, fmt.Errorf("%w: %s has no key", ErrInvalidCredential, c.ID)
		}

		if _, ok := seen[c.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, c.ID)
		}
		seen[c.ID] = struct{}{}
	}

	return file.Credentials, nil
}
