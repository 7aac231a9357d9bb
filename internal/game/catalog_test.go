package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarterCatalogIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, item := range StarterCatalog() {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
		assert.True(t, item.Price >= 0)
	}
}

func TestAppliedValueFallsBackToEmoji(t *testing.T) {
	withData := ShopItem{Emoji: "👻", Data: "grayscale(100%)"}
	assert.Equal(t, "grayscale(100%)", withData.AppliedValue())

	emojiOnly := ShopItem{Emoji: "🌲"}
	assert.Equal(t, "🌲", emojiOnly.AppliedValue())
}

func TestMigrateCatalogAppendsNewItems(t *testing.T) {
	// Snapshot from an old version that predates most of the catalog.
	old := []ShopItem{{ID: "hat_cap", Name: "Blue Cap", Price: 50, Type: ItemHat, Emoji: "🧢"}}

	merged := MigrateCatalog(old)
	assert.Len(t, merged, len(StarterCatalog()))
	assert.Equal(t, "hat_cap", merged[0].ID, "loaded items keep their position")
}

func TestMigrateCatalogRefreshesAssetsKeepsPrice(t *testing.T) {
	old := []ShopItem{{ID: "hat_cap", Name: "Blue Cap", Price: 9999, Type: ItemHat, Emoji: "🧢"}}

	merged := MigrateCatalog(old)
	cap := merged[0]
	require.Equal(t, "hat_cap", cap.ID)
	assert.Equal(t, 9999, cap.Price, "migration never rewrites price")
	assert.NotEmpty(t, cap.Image, "image refreshed from starter data")
	assert.NotEmpty(t, cap.Data)
}

func TestMigrateCatalogKeepsUnknownItems(t *testing.T) {
	old := []ShopItem{{ID: "hat_custom", Name: "Event Hat", Price: 1, Type: ItemHat, Emoji: "🎪"}}
	merged := MigrateCatalog(old)
	assert.Len(t, merged, len(StarterCatalog())+1)
	assert.Equal(t, "hat_custom", merged[0].ID)
}

func TestMigrateCatalogFromNil(t *testing.T) {
	merged := MigrateCatalog(nil)
	assert.Equal(t, StarterCatalog(), merged)
}
