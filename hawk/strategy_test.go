package hawk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("nil resolver returns error", func(t *testing.T) {
		s, err := New(Config{})
		assert.ErrorIs(t, err, ErrNoResolver)
		assert.Nil(t, s)
	})

	t.Run("nil resolver in bewit mode returns error", func(t *testing.T) {
		_, err := New(Config{Bewit: true})
		assert.ErrorIs(t, err, ErrNoResolver)
	})

	t.Run("default engine is used", func(t *testing.T) {
		s, err := New(Config{Resolver: newStaticResolver()})
		require.NoError(t, err)
		assert.Equal(t, DefaultEngine(), s.engine)
	})

	t.Run("custom engine is kept", func(t *testing.T) {
		engine := &recordingEngine{}
		s, err := New(Config{Resolver: newStaticResolver(), Engine: engine})
		require.NoError(t, err)
		assert.Same(t, engine, s.engine)
	})
}

func TestModeSelection(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want Mode
	}{
		{name: "resolver only is standard", cfg: Config{}, want: ModeStandard},
		{name: "bewit true is bewit", cfg: Config{Bewit: true}, want: ModeBewit},
		{name: "bewit false is standard", cfg: Config{Bewit: false}, want: ModeStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Resolver = newStaticResolver()

			s, err := New(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Mode())
		})
	}
}

func TestStrategyName(t *testing.T) {
	s := newTestStrategy(t, false, newStaticResolver())
	assert.Equal(t, "hawk", s.Name())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "standard", ModeStandard.String())
	assert.Equal(t, "bewit", ModeBewit.String())
	assert.Equal(t, "unknown", Mode(42).String())
}
