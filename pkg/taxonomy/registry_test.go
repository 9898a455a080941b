package taxonomy

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"evalvault/pkg/core"
)

func TestRegistryLookup(t *testing.T) {
	registry := NewRegistry()

	entry, err := registry.Lookup(10)
	require.NoError(t, err)
	require.Equal(t, "Fabricated Facts", entry.Name)
	require.Equal(t, core.CategoryFactuality, entry.Category)
}

func TestRegistryLookupOutOfRange(t *testing.T) {
	registry := NewRegistry()

	for _, id := range []int{0, -1, 27, 100} {
		_, err := registry.Lookup(id)
		require.Error(t, err)
		require.True(t, errors.Is(err, core.NotFoundError))
	}
}

func TestRegistryAllOrderedByID(t *testing.T) {
	registry := NewRegistry()

	entries := registry.All()
	require.Len(t, entries, 26)
	for i, entry := range entries {
		require.Equal(t, i+1, entry.ID)
		require.True(t, entry.Category.Valid())
		require.NotEmpty(t, entry.Name)
	}
}

func TestRegistryByCategory(t *testing.T) {
	registry := NewRegistry()

	total := 0
	for _, cat := range core.Categories {
		entries := registry.ByCategory(cat)
		require.NotEmpty(t, entries)
		for _, entry := range entries {
			require.Equal(t, cat, entry.Category)
		}
		total += len(entries)
	}
	require.Equal(t, registry.Len(), total)
}

func TestRegistryValidate(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Validate(1, 13, 26))
	require.Error(t, registry.Validate(1, 27))
}
