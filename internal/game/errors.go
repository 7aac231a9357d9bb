package game

import (
	"errors"
	"fmt"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrItemNotFound  = errors.New("shop item not found")
	ErrNotLoggedIn   = errors.New("not logged in; run 'hatch login <username>' first")
)

// InsufficientFundsError is a normal negative outcome, not a failure: the
// purchase is rejected with no state change.
type InsufficientFundsError struct {
	ItemID string
	Price  int
	Coins  int
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("not enough coins for %s: need %d, have %d", e.ItemID, e.Price, e.Coins)
}
