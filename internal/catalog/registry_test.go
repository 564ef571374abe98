package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryKeepsCatalogOrder(t *testing.T) {
	registry := NewRegistry(Catalog{
		Variables: []Variable{{Name: "zebra"}, {Name: "apple"}, {Name: "mango"}},
		Methods:   []Method{{Name: "trim"}, {Name: "lower"}, {Name: "upper"}},
	})

	vars := registry.Variables()
	require.Len(t, vars, 3)
	assert.Equal(t, "zebra", vars[0].Name)
	assert.Equal(t, "apple", vars[1].Name)
	assert.Equal(t, "mango", vars[2].Name)

	methods := registry.Methods()
	require.Len(t, methods, 3)
	assert.Equal(t, "trim", methods[0].Name)
	assert.Equal(t, "upper", methods[2].Name)
}

func TestRegistryDeduplication(t *testing.T) {
	registry := NewRegistry(Catalog{
		Variables: []Variable{
			{Name: "date", Description: "Date"},
			{Name: "time"},
			{Name: "date", Description: "Current date", Formats: []FormatOption{{Text: "yyyy"}}},
		},
		Methods: []Method{
			{Name: "upper", Description: "Upper"},
			{Name: "upper", Description: "Upper case", Aliases: []string{"toUpper"}},
		},
	})

	nv, nm := registry.Size()
	assert.Equal(t, 2, nv)
	assert.Equal(t, 1, nm)

	// The richer entry wins but keeps the first position.
	vars := registry.Variables()
	assert.Equal(t, "date", vars[0].Name)
	assert.Len(t, vars[0].Formats, 1)

	m, ok := registry.LookupMethod("toUpper")
	require.True(t, ok)
	assert.Equal(t, "upper", m.Name)
}

func TestRegistryLookupVariable(t *testing.T) {
	registry := NewRegistry(Catalog{
		Variables: []Variable{{Name: "Date"}, {Name: "date", Description: "lower"}},
	})

	v, ok := registry.LookupVariable("date")
	require.True(t, ok)
	assert.Equal(t, "lower", v.Description, "exact match beats case-insensitive match")

	v, ok = registry.LookupVariable("DATE")
	require.True(t, ok)
	assert.Equal(t, "Date", v.Name)

	_, ok = registry.LookupVariable("missing")
	assert.False(t, ok)
}

func TestRegistryLookupMethod(t *testing.T) {
	registry := NewRegistry(Catalog{
		Methods: []Method{
			{Name: "substring", Aliases: []string{"substr"}, HasParameters: true},
			{Name: "lower", Aliases: []string{"toLower"}},
		},
	})

	m, ok := registry.LookupMethod("substr")
	require.True(t, ok)
	assert.Equal(t, "substring", m.Name)
	assert.True(t, m.HasParameters)

	m, ok = registry.LookupMethod("TOLOWER")
	require.True(t, ok)
	assert.Equal(t, "lower", m.Name)

	_, ok = registry.LookupMethod("upper")
	assert.False(t, ok)
}

func TestRegistrySearch(t *testing.T) {
	registry := NewRegistry(Catalog{
		Variables: []Variable{
			{Name: "clipboard", Description: "Clipboard text"},
			{Name: "date", Description: "Current date"},
		},
		Methods: []Method{
			{Name: "upper", Aliases: []string{"toUpper"}, Description: "Convert to upper case"},
			{Name: "trim", Description: "Remove whitespace"},
		},
	})

	vars, methods := registry.Search("CLIP")
	assert.Len(t, vars, 1)
	assert.Empty(t, methods)

	vars, methods = registry.Search("toup")
	assert.Empty(t, vars)
	require.Len(t, methods, 1)
	assert.Equal(t, "upper", methods[0].Name)

	vars, methods = registry.Search("")
	assert.Len(t, vars, 2)
	assert.Len(t, methods, 2)
}

func TestRegistryReturnsCopies(t *testing.T) {
	registry := NewRegistry(Catalog{
		Variables: []Variable{{Name: "text"}},
		Reserved:  []string{"i"},
	})
	vars := registry.Variables()
	vars[0].Name = "mutated"
	reserved := registry.Reserved()
	reserved[0] = "j"

	assert.Equal(t, "text", registry.Variables()[0].Name)
	assert.Equal(t, []string{"i"}, registry.Reserved())
}
