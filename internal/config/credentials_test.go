package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCredentials = `
credentials:
  - id: dh37fgj492je
    key: werxhqb98rpaxn39848xrunpaw3489ruxnpa98w4rxn
    algorithm: sha256
    user: steve
  - id: legacy
    key: old-secret
    algorithm: sha1
    user: bob
    disabled: true
`

func TestParseCredentials(t *testing.T) {
	t.Run("valid table", func(t *testing.T) {
		creds, err := ParseCredentials([]byte(validCredentials))
		require.NoError(t, err)
		require.Len(t, creds, 2)

		assert.Equal(t, Credential{
			ID:        "dh37fgj492je",
			Key:       "werxhqb98rpaxn39848xrunpaw3489ruxnpa98w4rxn",
			Algorithm: "sha256",
			User:      "steve",
		}, creds[0])
		assert.True(t, creds[1].Disabled)
	})

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "missing id", data: "credentials:\n  - key: k\n", wantErr: ErrInvalidCredential},
		{name: "missing key", data: "credentials:\n  - id: a\n", wantErr: ErrInvalidCredential},
		{name: "duplicate id", data: "credentials:\n  - {id: a, key: k}\n  - {id: a, key: j}\n", wantErr: ErrDuplicateID},
		{name: "unknown field", data: "credentials:\n  - {id: a, key: k, secret: x}\n"},
		{name: "not yaml", data: "credentials: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCredentials([]byte(tt.data))
			assert.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadCredentials(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validCredentials), 0o600))

		creds, err := LoadCredentials(path)
		require.NoError(t, err)
		assert.Len(t, creds, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCredentials(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
