// Package credstore resolves Hawk credentials from a static table.
package credstore

import (
	"context"

	"github.com/vitalvas/hawkauth/hawk"
	"github.com/vitalvas/hawkauth/internal/config"
)

// User is the principal reported for credentials from the table.
type User struct {
	ID   string
	Name string
}

// Store is an immutable, in-memory hawk.Resolver.
type Store struct {
	entries map[string]config.Credential
}

// New returns a Store over creds. Later entries override earlier ones with
// the same id; config.ParseCredentials already rejects duplicates.
func New(creds []config.Credential) *Store {
	entries := make(map[string]config.Credential, len(creds))
	for _, c := range creds {
		entries[c.ID] = c
	}

	return &Store{entries: entries}
}

// Resolve implements hawk.Resolver. Unknown and disabled ids are
// hawk.NotFound.
func (s *Store) Resolve(ctx context.Context, id string) (hawk.Lookup, error) {
	if err := ctx.Err(); err != nil {
		return hawk.Lookup{}, err
	}

	c, ok := s.entries[id]
	if !ok || c.Disabled {
		return hawk.NotFound(), nil
	}

	return hawk.Found(hawk.Credentials{
		Key:       c.Key,
		Algorithm: hawk.Algorithm(c.Algorithm),
		User:      &User{ID: c.ID, Name: c.User},
	}), nil
}

// Len returns the number of entries, disabled ones included.
func (s *Store) Len() int {
	return len(s.entries)
}
