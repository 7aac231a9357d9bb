package game

// UserState is the persisted economy snapshot: balances, day streak and the
// owned-item inventory. LastLoginDate uses local-calendar YYYY-MM-DD keys.
type UserState struct {
	Coins         int      `json:"coins"`
	Gems          int      `json:"gems"`
	DayStreak     int      `json:"dayStreak"`
	LastLoginDate string   `json:"lastLoginDate"`
	Inventory     []string `json:"inventory"`
}

// NewUser returns the documented default ledger: zero balances, nothing owned.
func NewUser() UserState {
	return UserState{Inventory: []string{}}
}

// Ledger owns UserState. Coins never go negative: debits happen only through
// Purchase, which rejects underfunded requests outright.
type Ledger struct {
	user UserState
}

func NewLedger(user UserState) *Ledger {
	if user.Inventory == nil {
		user.Inventory = []string{}
	}
	if user.Coins < 0 {
		user.Coins = 0
	}
	if user.Gems < 0 {
		user.Gems = 0
	}
	if user.DayStreak < 0 {
		user.DayStreak = 0
	}
	return &Ledger{user: user}
}

func (l *Ledger) User() UserState {
	u := l.user
	u.Inventory = append([]string(nil), l.user.Inventory...)
	return u
}

func (l *Ledger) Coins() int     { return l.user.Coins }
func (l *Ledger) Gems() int      { return l.user.Gems }
func (l *Ledger) DayStreak() int { return l.user.DayStreak }

// Credit adds coins. Habit completions and arcade payouts come through here;
// negative amounts are ignored rather than allowed to drain the balance.
func (l *Ledger) Credit(amount int) {
	if amount > 0 {
		l.user.Coins += amount
	}
}

func (l *Ledger) CreditGems(amount int) {
	if amount > 0 {
		l.user.Gems += amount
	}
}

func (l *Ledger) Owns(itemID string) bool {
	for _, id := range l.user.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// PurchaseOutcome distinguishes a fresh purchase from an owned item being
// re-selected, which the shop reinterprets as an equip request.
type PurchaseOutcome int

const (
	PurchaseBought PurchaseOutcome = iota
	PurchaseAlreadyOwned
)

// Purchase debits the price and records ownership. Already-owned items cost
// nothing; an underfunded purchase returns InsufficientFundsError with no
// state change.
func (l *Ledger) Purchase(item ShopItem) (PurchaseOutcome, error) {
	if l.Owns(item.ID) {
		return PurchaseAlreadyOwned, nil
	}
	if l.user.Coins < item.Price {
		return 0, InsufficientFundsError{ItemID: item.ID, Price: item.Price, Coins: l.user.Coins}
	}
	l.user.Coins -= item.Price
	l.user.Inventory = append(l.user.Inventory, item.ID)
	return PurchaseBought, nil
}

func (l *Ledger) setDayStreak(n int) {
	if n < 0 {
		n = 0
	}
	l.user.DayStreak = n
}

func (l *Ledger) setLastLoginDate(date string) {
	l.user.LastLoginDate = date
}
