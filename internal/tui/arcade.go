// Package tui hosts the interactive arcade sessions. The engine sessions in
// internal/arcade hold all game state; these models only translate key
// presses and timers into session calls and render the result.
package tui

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"habithatch/internal/config"
	"habithatch/internal/game"
)

const (
	// suspenseDelay is the cosmetic pause before a rock-paper-scissors
	// reveal. The opponent draw happens after it fires, never before.
	suspenseDelay = 600 * time.Millisecond
	// mismatchDelay is how long a failed memory pair stays face-up.
	mismatchDelay = time.Second
)

// RunRPS plays rock-paper-scissors rounds until the player quits.
func RunRPS(ctx context.Context, svc *game.Service, balance config.Balance, rng *rand.Rand) error {
	m := newRPSModel(ctx, svc, balance, rng)
	_, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("arcade: %w", err)
	}
	return nil
}

// RunMemory plays memory-match sessions until the player quits.
func RunMemory(ctx context.Context, svc *game.Service, balance config.Balance, rng *rand.Rand) error {
	m := newMemoryModel(ctx, svc, balance, rng)
	_, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("arcade: %w", err)
	}
	return nil
}

// RunBlitz plays tap-blitz sessions until the player quits.
func RunBlitz(ctx context.Context, svc *game.Service, balance config.Balance) error {
	m := newBlitzModel(ctx, svc, balance)
	_, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("arcade: %w", err)
	}
	return nil
}
