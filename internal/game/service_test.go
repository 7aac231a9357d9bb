package game

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habithatch/internal/config"
	"habithatch/internal/storage"
)

func newTestRepo(t *testing.T) *storage.SaveRepo {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return storage.NewSaveRepo(db)
}

func newTestService(t *testing.T, repo *storage.SaveRepo, now time.Time, opts ...Option) *Service {
	t.Helper()
	clock := now
	opts = append([]Option{WithClock(func() time.Time { return clock })}, opts...)
	svc, err := Load(context.Background(), repo, "tester", config.Default(), opts...)
	require.NoError(t, err)
	return svc
}

func TestLoadDefaultsForFreshUser(t *testing.T) {
	svc := newTestService(t, newTestRepo(t), localDate(2026, time.March, 10, 9))

	pet := svc.Pet()
	assert.Equal(t, StageEgg, pet.Stage)
	assert.Equal(t, 0, pet.XP)
	assert.Equal(t, 1, pet.Level)

	user := svc.User()
	assert.Equal(t, 0, user.Coins)
	assert.Equal(t, 0, user.Gems)
	assert.Empty(t, user.Inventory)

	assert.Len(t, svc.Habits(), 3)
	assert.Len(t, svc.Catalog(), len(StarterCatalog()))
}

func TestLoadRequiresUsername(t *testing.T) {
	_, err := Load(context.Background(), newTestRepo(t), "", config.Default())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestCompleteHabitEndToEnd(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestRepo(t), localDate(2026, time.March, 10, 9))
	_, err := svc.CheckDay(ctx) // first run stamps today
	require.NoError(t, err)

	res, err := svc.CompleteHabit(ctx, "1")
	require.NoError(t, err)
	require.True(t, res.Counted)

	assert.Equal(t, 15, res.XPAwarded)
	assert.Equal(t, 10, res.CoinsEarned)
	assert.Equal(t, 1, res.Habit.Streak)
	assert.True(t, res.StreakBump, "first completion of the day bumps the streak")
	assert.Equal(t, 1, res.DayStreak)

	assert.Equal(t, 15, svc.Pet().XP)
	assert.Equal(t, 10, svc.User().Coins)
	assert.Equal(t, 5, svc.User().Gems)
	assert.Equal(t, 1, svc.User().DayStreak)
	assert.Equal(t, fallbackReaction, res.Reaction)
}

func TestCompleteHabitTwiceIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestRepo(t), localDate(2026, time.March, 10, 9))

	first, err := svc.CompleteHabit(ctx, "1")
	require.NoError(t, err)
	require.True(t, first.Counted)

	again, err := svc.CompleteHabit(ctx, "1")
	require.NoError(t, err)
	assert.False(t, again.Counted)
	assert.Zero(t, again.XPAwarded)
	assert.Zero(t, again.CoinsEarned)

	assert.Equal(t, 15, svc.Pet().XP, "state identical to a single completion")
	assert.Equal(t, 10, svc.User().Coins)
	assert.Equal(t, 1, svc.User().DayStreak)
}

func TestDayStreakBumpsOncePerDay(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestRepo(t), localDate(2026, time.March, 10, 9))

	for _, id := range []string{"1", "2", "3"} {
		_, err := svc.CompleteHabit(ctx, id)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, svc.User().DayStreak, "at most one day-streak increment per calendar day")
	assert.Equal(t, 5, svc.User().Gems)
}

func TestCheckDayConsecutive(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	day1 := localDate(2026, time.March, 10, 9)
	svc := newTestService(t, repo, day1)
	_, err := svc.CheckDay(ctx)
	require.NoError(t, err)
	_, err = svc.CompleteHabit(ctx, "1")
	require.NoError(t, err)
	streakBefore := svc.User().DayStreak

	// Next morning.
	svc = newTestService(t, repo, day1.AddDate(0, 0, 1))
	roll, err := svc.CheckDay(ctx)
	require.NoError(t, err)

	assert.Equal(t, ConsecutiveDay, roll.Kind)
	assert.Equal(t, streakBefore+1, svc.User().DayStreak)
	assert.Equal(t, DateKey(day1.AddDate(0, 0, 1)), svc.User().LastLoginDate)
	assert.Equal(t, fallbackGreeting, roll.Greeting)
	for _, h := range svc.Habits() {
		assert.False(t, h.Completed, "habits reset on rollover")
	}
	got, ok := NewHabits(svc.Habits()).Get("1")
	require.True(t, ok)
	assert.Equal(t, 1, got.Streak, "habit streak survives the rollover")
}

func TestCheckDayGapResetsStreak(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	day1 := localDate(2026, time.March, 10, 9)
	svc := newTestService(t, repo, day1)
	_, err := svc.CheckDay(ctx)
	require.NoError(t, err)
	_, err = svc.CompleteHabit(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, 1, svc.User().DayStreak)

	// Three days later.
	svc = newTestService(t, repo, day1.AddDate(0, 0, 3))
	roll, err := svc.CheckDay(ctx)
	require.NoError(t, err)

	assert.Equal(t, GapDay, roll.Kind)
	assert.Equal(t, 0, svc.User().DayStreak)
	for _, h := range svc.Habits() {
		assert.False(t, h.Completed)
	}
}

func TestCheckDaySameDayIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestRepo(t), localDate(2026, time.March, 10, 9))
	_, err := svc.CheckDay(ctx)
	require.NoError(t, err)
	_, err = svc.CompleteHabit(ctx, "1")
	require.NoError(t, err)

	roll, err := svc.CheckDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, SameDay, roll.Kind)

	got, ok := NewHabits(svc.Habits()).Get("1")
	require.True(t, ok)
	assert.True(t, got.Completed, "same-day check must not reset habits")
}

func TestBuyEquipFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestRepo(t), localDate(2026, time.March, 10, 9))
	svc.ledger.Credit(100)

	res, err := svc.BuyItem(ctx, "hat_cap")
	require.NoError(t, err)
	assert.Equal(t, PurchaseBought, res.Outcome)
	assert.Equal(t, 50, res.Coins)
	assert.True(t, res.Equipped)

	cap, err := svc.Item("hat_cap")
	require.NoError(t, err)
	assert.True(t, svc.Owns(cap))
	assert.True(t, svc.Equipped(cap))
	require.NotNil(t, svc.Pet().EquippedHat)
	assert.Equal(t, cap.AppliedValue(), *svc.Pet().EquippedHat)

	// Buying again is an equip request, not a charge.
	res, err = svc.BuyItem(ctx, "hat_cap")
	require.NoError(t, err)
	assert.Equal(t, PurchaseAlreadyOwned, res.Outcome)
	assert.Equal(t, 50, svc.User().Coins)
}

func TestBuyRejectedKeepsState(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestRepo(t), localDate(2026, time.March, 10, 9))

	_, err := svc.BuyItem(ctx, "hat_crown")
	var funds InsufficientFundsError
	require.ErrorAs(t, err, &funds)
	assert.Equal(t, 0, svc.User().Coins)
	assert.Empty(t, svc.User().Inventory)
	assert.Nil(t, svc.Pet().EquippedHat)
}

func TestEquipSlotsAreExclusivePerCategory(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestRepo(t), localDate(2026, time.March, 10, 9))
	svc.ledger.Credit(1000)

	_, err := svc.BuyItem(ctx, "hat_cap")
	require.NoError(t, err)
	_, err = svc.BuyItem(ctx, "bg_forest")
	require.NoError(t, err)
	_, err = svc.BuyItem(ctx, "hat_top")
	require.NoError(t, err)

	top, err := svc.Item("hat_top")
	require.NoError(t, err)
	forest, err := svc.Item("bg_forest")
	require.NoError(t, err)
	cap, err := svc.Item("hat_cap")
	require.NoError(t, err)

	assert.True(t, svc.Equipped(top), "newest hat wins the hat slot")
	assert.False(t, svc.Equipped(cap))
	assert.True(t, svc.Equipped(forest), "background slot untouched by hat swaps")
}

func TestEquipRequiresOwnership(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestRepo(t), localDate(2026, time.March, 10, 9))
	assert.Error(t, svc.EquipItem(ctx, "hat_cap"))
}

func TestCreditArcade(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestRepo(t), localDate(2026, time.March, 10, 9))

	svc.CreditArcade(ctx, 30)
	svc.CreditArcade(ctx, 0)
	assert.Equal(t, 30, svc.User().Coins)
}

// testClock is a settable clock that is safe to read from the daily loop's
// goroutine while the test advances it.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func TestRunDailyLoopCatchesMidnight(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lateEvening := localDate(2026, time.March, 10, 23)
	clock := &testClock{now: lateEvening}
	svc, err := Load(ctx, newTestRepo(t), "tester", config.Default(), WithClock(clock.Now))
	require.NoError(t, err)
	_, err = svc.CheckDay(ctx) // first run stamps today
	require.NoError(t, err)
	_, err = svc.CompleteHabit(ctx, "1")
	require.NoError(t, err)

	rollovers := make(chan *DayRollover, 4)
	go svc.RunDailyLoop(ctx, time.Millisecond, func(r *DayRollover) { rollovers <- r })

	// Ticks before midnight are same-day checks and stay silent.
	select {
	case r := <-rollovers:
		t.Fatalf("rollover %v fired before midnight", r.Kind)
	case <-time.After(25 * time.Millisecond):
	}

	clock.Set(lateEvening.Add(2 * time.Hour)) // 01:00 the next day

	select {
	case r := <-rollovers:
		assert.Equal(t, ConsecutiveDay, r.Kind)
		assert.Equal(t, 2, r.DayStreak)
	case <-time.After(2 * time.Second):
		t.Fatal("no rollover after the clock crossed midnight")
	}

	// The stamped date moved with the rollover, so it fires exactly once.
	select {
	case r := <-rollovers:
		t.Fatalf("second rollover fired: %v", r.Kind)
	case <-time.After(25 * time.Millisecond):
	}

	assert.Equal(t, 2, svc.User().DayStreak)
	for _, h := range svc.Habits() {
		assert.False(t, h.Completed, "habits reset when the loop catches midnight")
	}
}

func TestDailyLoopIsSafeAlongsideArcadePayouts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := &testClock{now: localDate(2026, time.March, 10, 9)}
	svc, err := Load(ctx, newTestRepo(t), "tester", config.Default(), WithClock(clock.Now))
	require.NoError(t, err)
	_, err = svc.CheckDay(ctx)
	require.NoError(t, err)

	go svc.RunDailyLoop(ctx, time.Millisecond, nil)

	// Payouts land while the loop keeps checking, including across
	// several midnights; the ledger must not lose a single coin.
	const rounds = 50
	for i := 0; i < rounds; i++ {
		svc.CreditArcade(ctx, 1)
		if i%10 == 9 {
			clock.Set(clock.Now().AddDate(0, 0, 1))
		}
	}
	cancel()

	assert.Equal(t, rounds, svc.User().Coins)
}

func TestStatePersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := localDate(2026, time.March, 10, 9)

	svc := newTestService(t, repo, now)
	_, err := svc.CheckDay(ctx)
	require.NoError(t, err)
	_, err = svc.CompleteHabit(ctx, "1")
	require.NoError(t, err)
	svc.ledger.Credit(90) // 100 total with the habit payout
	_, err = svc.BuyItem(ctx, "hat_cap")
	require.NoError(t, err)
	require.NoError(t, svc.Save(ctx))

	reloaded := newTestService(t, repo, now)
	assert.Equal(t, 15, reloaded.Pet().XP)
	assert.Equal(t, 50, reloaded.User().Coins)
	assert.Equal(t, []string{"hat_cap"}, reloaded.User().Inventory)
	require.NotNil(t, reloaded.Pet().EquippedHat)

	got, ok := NewHabits(reloaded.Habits()).Get("1")
	require.True(t, ok)
	assert.True(t, got.Completed)
	assert.Equal(t, 1, got.Streak)
}

func TestCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, repo.Save(ctx, "tester", storage.SlotPet, []byte("{not json")))
	require.NoError(t, repo.Save(ctx, "tester", storage.SlotHabits, []byte("42")))

	svc := newTestService(t, repo, localDate(2026, time.March, 10, 9))
	assert.Equal(t, StageEgg, svc.Pet().Stage)
	assert.Len(t, svc.Habits(), 3)
}

type stubFlavor struct {
	reaction string
	greeting string
	err      error
}

func (s stubFlavor) ReactionFor(_ context.Context, _, _ string, _ PetStage, _ int) (string, error) {
	return s.reaction, s.err
}

func (s stubFlavor) GreetingFor(_ context.Context, _ string, _ PetStage, _ TimeOfDay) (string, error) {
	return s.greeting, s.err
}

func TestFlavorTextIsUsedWhenAvailable(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestRepo(t), localDate(2026, time.March, 10, 9),
		WithFlavor(stubFlavor{reaction: "Wiggle wiggle!", greeting: "Morning, friend!"}))

	res, err := svc.CompleteHabit(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Wiggle wiggle!", res.Reaction)

	roll, err := svc.CheckDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Morning, friend!", roll.Greeting)
}

func TestFlavorFailureNeverBlocksStateChange(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestRepo(t), localDate(2026, time.March, 10, 9),
		WithFlavor(stubFlavor{err: errors.New("api down")}))

	res, err := svc.CompleteHabit(ctx, "1")
	require.NoError(t, err, "a dead generator must not fail the completion")
	assert.Equal(t, fallbackReaction, res.Reaction)
	assert.Equal(t, 15, svc.Pet().XP, "xp applied despite flavor failure")

	roll, err := svc.CheckDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, fallbackGreeting, roll.Greeting)
}
