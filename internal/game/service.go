package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"habithatch/internal/config"
	"habithatch/internal/storage"
)

// Flavorer is the text-generation collaborator as the service sees it: it
// may be nil, and callers always receive a usable string.
type Flavorer interface {
	ReactionFor(ctx context.Context, habitName, petName string, stage PetStage, streak int) (string, error)
	GreetingFor(ctx context.Context, petName string, stage PetStage, timeOfDay TimeOfDay) (string, error)
}

const (
	fallbackReaction = "Great job! Keep it up!"
	fallbackGreeting = "Ready to grow?"
	flavorTimeout    = 5 * time.Second
)

// Service owns one user's in-memory game state and orchestrates every
// operation across the habit tracker, the progression engine, the ledger
// and the shop. A single mutex serializes operations, so the periodic
// daily check can run on its own goroutine while the UI keeps calling in.
// Mutating operations persist all four snapshots before returning.
type Service struct {
	username string
	balance  config.Balance
	mu       sync.Mutex

	habits  *Habits
	pet     PetState
	ledger  *Ledger
	catalog []ShopItem

	saves  *storage.SaveRepo
	flavor Flavorer
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Service)

// WithClock fixes the service's notion of now; tests use it to cross
// calendar days.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithFlavor(f Flavorer) Option {
	return func(s *Service) { s.flavor = f }
}

// Load restores a user's game from the snapshot store, substituting the
// documented defaults for any absent or corrupt slot, and migrating the
// shop catalog non-destructively.
func Load(ctx context.Context, saves *storage.SaveRepo, username string, balance config.Balance, opts ...Option) (*Service, error) {
	if username == "" {
		return nil, ErrNotLoggedIn
	}

	s := &Service{
		username: username,
		balance:  balance,
		saves:    saves,
		logger:   slog.Default().With("component", "game", "user", username),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	var habitList []Habit
	if ok, err := saves.LoadJSON(ctx, username, storage.SlotHabits, &habitList); err != nil {
		return nil, err
	} else if !ok {
		habitList = StarterHabits()
	}
	s.habits = NewHabits(habitList)

	user := NewUser()
	if ok, err := saves.LoadJSON(ctx, username, storage.SlotUser, &user); err != nil {
		return nil, err
	} else if !ok {
		user = NewUser()
	}
	s.ledger = NewLedger(user)

	pet := NewPet()
	if ok, err := saves.LoadJSON(ctx, username, storage.SlotPet, &pet); err != nil {
		return nil, err
	} else if !ok {
		pet = NewPet()
	}
	pet.Normalize()
	s.pet = pet

	var catalog []ShopItem
	if ok, err := saves.LoadJSON(ctx, username, storage.SlotShop, &catalog); err != nil {
		return nil, err
	} else if !ok {
		catalog = nil
	}
	s.catalog = MigrateCatalog(catalog)

	return s, nil
}

func (s *Service) Username() string { return s.username }

func (s *Service) Pet() PetState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pet
}

func (s *Service) User() UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.User()
}

func (s *Service) Habits() []Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.habits.List()
}

func (s *Service) Catalog() []ShopItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ShopItem, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Save persists all four snapshots atomically.
func (s *Service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx)
}

// save is Save without the lock, for operations already holding it.
func (s *Service) save(ctx context.Context) error {
	return s.saves.SaveAll(ctx, s.username, map[string]any{
		storage.SlotHabits: s.habits.List(),
		storage.SlotUser:   s.ledger.User(),
		storage.SlotPet:    s.pet,
		storage.SlotShop:   s.catalog,
	})
}

// autosave logs persistence trouble instead of failing the operation that
// triggered it; the in-memory state is already consistent.
func (s *Service) autosave(ctx context.Context) {
	if err := s.save(ctx); err != nil {
		s.logger.Warn("autosave failed", "err", err)
	}
}

func (s *Service) AddHabit(ctx context.Context, name string) (Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	habit, err := s.habits.Add(name)
	if err != nil {
		return Habit{}, err
	}
	s.autosave(ctx)
	return habit, nil
}

func (s *Service) RemoveHabit(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.habits.Remove(id); err != nil {
		return err
	}
	s.autosave(ctx)
	return nil
}

type CompleteHabitResult struct {
	Habit       Habit
	Counted     bool
	XPAwarded   int
	CoinsEarned int
	GemsEarned  int
	StageBefore PetStage
	StageAfter  PetStage
	StageUp     bool
	StreakBump  bool
	DayStreak   int
	Reaction    string
}

// CompleteHabit applies one habit completion: habit streak, XP, coins, and
// the once-per-day day-streak bump. Completing an already-completed habit
// changes nothing. The "first completion today" check reads the tracker
// immediately before the mutation, inside this single operation, so the
// day streak can bump at most once per calendar day.
func (s *Service) CompleteHabit(ctx context.Context, id string) (*CompleteHabitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	firstToday := s.habits.NoneCompleted()

	habit, counted, err := s.habits.Complete(id)
	if err != nil {
		return nil, err
	}
	res := &CompleteHabitResult{
		Habit:       habit,
		Counted:     counted,
		StageBefore: s.pet.Stage,
		StageAfter:  s.pet.Stage,
		DayStreak:   s.ledger.DayStreak(),
	}
	if !counted {
		return res, nil
	}

	s.ledger.Credit(s.balance.CoinsPerHabit)
	res.CoinsEarned = s.balance.CoinsPerHabit

	if firstToday {
		s.ledger.setDayStreak(s.ledger.DayStreak() + 1)
		s.ledger.CreditGems(s.balance.GemsPerStreakDay)
		res.StreakBump = true
		res.GemsEarned = s.balance.GemsPerStreakDay
	}
	res.DayStreak = s.ledger.DayStreak()

	res.StageUp = s.pet.ApplyExperience(s.balance.XPPerHabit, s.balance.HappinessPerWin)
	res.XPAwarded = s.balance.XPPerHabit
	res.StageAfter = s.pet.Stage

	s.autosave(ctx)

	res.Reaction = s.reaction(ctx, habit.Name)
	return res, nil
}

type DayRollover struct {
	Kind      RolloverKind
	DayStreak int
	Greeting  string
}

// CheckDay evaluates the daily rollover state machine against the current
// calendar date. Same day is a no-op; a consecutive day extends the streak;
// any other gap (including the first run) resets it. Both non-same-day
// paths reset habit completion flags and stamp today.
func (s *Service) CheckDay(ctx context.Context) (*DayRollover, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	kind := classifyRollover(s.ledger.User().LastLoginDate, now)
	res := &DayRollover{Kind: kind, DayStreak: s.ledger.DayStreak()}
	if kind == SameDay {
		return res, nil
	}

	switch kind {
	case ConsecutiveDay:
		s.ledger.setDayStreak(s.ledger.DayStreak() + 1)
		s.ledger.CreditGems(s.balance.GemsPerStreakDay)
	case GapDay:
		s.ledger.setDayStreak(0)
	}
	s.ledger.setLastLoginDate(DateKey(now))
	s.habits.ResetDay()
	res.DayStreak = s.ledger.DayStreak()

	s.autosave(ctx)

	res.Greeting = s.greeting(ctx, TimeOfDayAt(now))
	return res, nil
}

// RunDailyLoop re-evaluates the rollover on a fixed interval until ctx is
// done, catching midnight while a long-lived session stays open. Rollover
// results are delivered to onRollover; same-day checks are not.
func (s *Service) RunDailyLoop(ctx context.Context, interval time.Duration, onRollover func(*DayRollover)) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res, err := s.CheckDay(ctx)
			if err != nil {
				s.logger.Warn("daily check failed", "err", err)
				continue
			}
			if res.Kind != SameDay && onRollover != nil {
				onRollover(res)
			}
		}
	}
}

// Item resolves a catalog item by id.
func (s *Service) Item(id string) (ShopItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.item(id)
}

func (s *Service) item(id string) (ShopItem, error) {
	for _, item := range s.catalog {
		if item.ID == id {
			return item, nil
		}
	}
	return ShopItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

type BuyResult struct {
	Item     ShopItem
	Outcome  PurchaseOutcome
	Coins    int
	Equipped bool
}

// BuyItem purchases (or, for an owned item, just re-equips) a catalog item.
// Insufficient funds reject the purchase with no state change.
func (s *Service) BuyItem(ctx context.Context, id string) (*BuyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, err := s.item(id)
	if err != nil {
		return nil, err
	}

	outcome, err := s.ledger.Purchase(item)
	if err != nil {
		return nil, err
	}
	equipped := s.equip(item)

	s.autosave(ctx)
	return &BuyResult{
		Item:     item,
		Outcome:  outcome,
		Coins:    s.ledger.Coins(),
		Equipped: equipped,
	}, nil
}

// EquipItem equips an owned item without charging for it.
func (s *Service) EquipItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, err := s.item(id)
	if err != nil {
		return err
	}
	if !s.ledger.Owns(item.ID) {
		return fmt.Errorf("%s is not owned yet", item.ID)
	}
	s.equip(item)
	s.autosave(ctx)
	return nil
}

// equip writes the item's applied value into its cosmetic slot. Slots are
// mutually exclusive per category; toys have no slot.
func (s *Service) equip(item ShopItem) bool {
	val := item.AppliedValue()
	switch item.Type {
	case ItemHat:
		s.pet.EquippedHat = &val
	case ItemBackground:
		s.pet.EquippedBackground = &val
	case ItemSkin:
		s.pet.EquippedSkin = &val
	case ItemAccessory:
		s.pet.EquippedAccessory = &val
	default:
		return false
	}
	return true
}

// Equipped reports whether the item's applied value currently sits in its
// slot. Derived on read; never stored.
func (s *Service) Equipped(item ShopItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	val := item.AppliedValue()
	var slot *string
	switch item.Type {
	case ItemHat:
		slot = s.pet.EquippedHat
	case ItemBackground:
		slot = s.pet.EquippedBackground
	case ItemSkin:
		slot = s.pet.EquippedSkin
	case ItemAccessory:
		slot = s.pet.EquippedAccessory
	}
	return slot != nil && *slot == val
}

// Owns reports derived ownership for display.
func (s *Service) Owns(item ShopItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Owns(item.ID)
}

// CreditArcade pays out a finished mini-game round.
func (s *Service) CreditArcade(ctx context.Context, coins int) {
	if coins <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.Credit(coins)
	s.autosave(ctx)
}

// PetThePet is the affection tap: a small happiness bump and a fixed line,
// no rewards.
func (s *Service) PetThePet(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pet.Happiness = clampPercent(s.pet.Happiness + 1)
	s.autosave(ctx)
	return "I love you!"
}

func (s *Service) reaction(ctx context.Context, habitName string) string {
	if s.flavor == nil {
		return fallbackReaction
	}
	ctx, cancel := context.WithTimeout(ctx, flavorTimeout)
	defer cancel()
	text, err := s.flavor.ReactionFor(ctx, habitName, s.pet.Name, s.pet.Stage, s.ledger.DayStreak())
	if err != nil || text == "" {
		if err != nil {
			s.logger.Warn("reaction generation failed", "err", err)
		}
		return fallbackReaction
	}
	return text
}

func (s *Service) greeting(ctx context.Context, tod TimeOfDay) string {
	if s.flavor == nil {
		return fallbackGreeting
	}
	ctx, cancel := context.WithTimeout(ctx, flavorTimeout)
	defer cancel()
	text, err := s.flavor.GreetingFor(ctx, s.pet.Name, s.pet.Stage, tod)
	if err != nil || text == "" {
		if err != nil {
			s.logger.Warn("greeting generation failed", "err", err)
		}
		return fallbackGreeting
	}
	return text
}
