package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		token    string
		category string
		ok       bool
	}{
		{"1", CategoryOils, true},
		{"oils", CategoryOils, true},
		{"OILS", CategoryOils, true},
		{"  2  ", CategorySnacks, true},
		{"snacks", CategorySnacks, true},
		{"Snacks", CategorySnacks, true},
		{"9", "", false},
		{"oil", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		category, menu, ok := ResolveCategory(tt.token)
		assert.Equal(t, tt.ok, ok, "token %q", tt.token)
		assert.Equal(t, tt.category, category, "token %q", tt.token)
		if tt.ok {
			assert.Len(t, menu, 4, "token %q", tt.token)
		} else {
			assert.Nil(t, menu, "token %q", tt.token)
		}
	}
}

func TestMenuLookup(t *testing.T) {
	name, ok := OilsMenu.Lookup("2")
	require.True(t, ok)
	assert.Equal(t, "Coconut Oil", name)

	name, ok = SnacksMenu.Lookup("4")
	require.True(t, ok)
	assert.Equal(t, "Boondi", name)

	_, ok = OilsMenu.Lookup("5")
	assert.False(t, ok)
}

func TestMenuRenderListsAllEntries(t *testing.T) {
	rendered := OilsMenu.Render()

	for _, entry := range OilsMenu {
		assert.Contains(t, rendered, entry.Name)
		assert.Contains(t, rendered, entry.Code)
	}
	assert.Equal(t, 4, len(strings.Split(rendered, "\n")))
}
