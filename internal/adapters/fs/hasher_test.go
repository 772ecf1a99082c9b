package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NyanCAD/amscrcuits/internal/adapters/fs"
	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func designFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "design.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestHasher_ComputeNetlistKey_Deterministic(t *testing.T) {
	path := designFile(t, "entities: []\n")
	target := domain.Target{
		Entity:    "tb",
		Overrides: map[string]string{"inverter": "spice", "buffer": "default", "nmos": "rtl"},
	}
	hasher := fs.NewHasher("v1")

	first, err := hasher.ComputeNetlistKey(path, target, "ngspice")
	require.NoError(t, err)
	for range 10 {
		again, err := hasher.ComputeNetlistKey(path, target, "ngspice")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Len(t, first, 16)
}

func TestHasher_ComputeNetlistKey_Changes(t *testing.T) {
	base := domain.Target{Entity: "tb", Architecture: "default"}
	path := designFile(t, "entities: []\n")
	hasher := fs.NewHasher("v1")
	baseKey, err := hasher.ComputeNetlistKey(path, base, "ngspice")
	require.NoError(t, err)

	tests := []struct {
		name      string
		hasher    *fs.Hasher
		content   string
		target    domain.Target
		simulator string
	}{
		{
			name:      "design content",
			hasher:    hasher,
			content:   "entities: [] # edited\n",
			target:    base,
			simulator: "ngspice",
		},
		{
			name:      "simulator",
			hasher:    hasher,
			target:    base,
			simulator: "xyce",
		},
		{
			name:      "entity",
			hasher:    hasher,
			target:    domain.Target{Entity: "buffer", Architecture: "default"},
			simulator: "ngspice",
		},
		{
			name:      "architecture",
			hasher:    hasher,
			target:    domain.Target{Entity: "tb", Architecture: "alt"},
			simulator: "ngspice",
		},
		{
			name:      "override",
			hasher:    hasher,
			target:    domain.Target{Entity: "tb", Architecture: "default", Overrides: map[string]string{"inverter": "spice"}},
			simulator: "ngspice",
		},
		{
			name:      "version",
			hasher:    fs.NewHasher("v2"),
			target:    base,
			simulator: "ngspice",
		},
		{
			// Field separators keep "tb"+"default" apart from "tbd"+"efault".
			name:      "field boundaries",
			hasher:    hasher,
			target:    domain.Target{Entity: "tbd", Architecture: "efault"},
			simulator: "ngspice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := path
			if tt.content != "" {
				p = designFile(t, tt.content)
			}
			key, err := tt.hasher.ComputeNetlistKey(p, tt.target, tt.simulator)
			require.NoError(t, err)
			assert.NotEqual(t, baseKey, key)
		})
	}
}

func TestHasher_ComputeNetlistKey_MissingFile(t *testing.T) {
	hasher := fs.NewHasher("v1")

	_, err := hasher.ComputeNetlistKey(filepath.Join(t.TempDir(), "missing.yaml"), domain.Target{}, "ngspice")

	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
