package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditIgnoresNonPositive(t *testing.T) {
	l := NewLedger(NewUser())
	l.Credit(10)
	l.Credit(0)
	l.Credit(-5)
	assert.Equal(t, 10, l.Coins())

	l.CreditGems(5)
	l.CreditGems(-1)
	assert.Equal(t, 5, l.Gems())
}

func TestPurchaseHappyPath(t *testing.T) {
	l := NewLedger(UserState{Coins: 100})
	item := ShopItem{ID: "hat_cap", Price: 50, Type: ItemHat}

	outcome, err := l.Purchase(item)
	require.NoError(t, err)
	assert.Equal(t, PurchaseBought, outcome)
	assert.Equal(t, 50, l.Coins())
	assert.True(t, l.Owns("hat_cap"))
}

func TestPurchaseInsufficientFundsChangesNothing(t *testing.T) {
	l := NewLedger(UserState{Coins: 30})
	item := ShopItem{ID: "hat_crown", Price: 500, Type: ItemHat}

	_, err := l.Purchase(item)
	var funds InsufficientFundsError
	require.ErrorAs(t, err, &funds)
	assert.Equal(t, 500, funds.Price)
	assert.Equal(t, 30, l.Coins())
	assert.False(t, l.Owns("hat_crown"))
}

func TestPurchaseOwnedItemNeverCharges(t *testing.T) {
	l := NewLedger(UserState{Coins: 100, Inventory: []string{"hat_cap"}})
	item := ShopItem{ID: "hat_cap", Price: 50, Type: ItemHat}

	outcome, err := l.Purchase(item)
	require.NoError(t, err)
	assert.Equal(t, PurchaseAlreadyOwned, outcome)
	assert.Equal(t, 100, l.Coins())

	// Inventory has no duplicate ids.
	count := 0
	for _, id := range l.User().Inventory {
		if id == "hat_cap" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestNewLedgerSanitizesLoadedState(t *testing.T) {
	l := NewLedger(UserState{Coins: -3, Gems: -1, DayStreak: -7})
	assert.Equal(t, 0, l.Coins())
	assert.Equal(t, 0, l.Gems())
	assert.Equal(t, 0, l.DayStreak())
	assert.NotNil(t, l.User().Inventory)
}
