package game

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Habit struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Streak    int    `json:"streak"`
}

// Habits owns the habit collection. Streaks only move forward: a streak
// increments on the completion transition and is never decremented here.
type Habits struct {
	list []Habit
}

func NewHabits(list []Habit) *Habits {
	return &Habits{list: list}
}

// StarterHabits returns the default habit list for a fresh user.
func StarterHabits() []Habit {
	return []Habit{
		{ID: "1", Name: "Drink Water"},
		{ID: "2", Name: "Read 10 mins"},
		{ID: "3", Name: "Exercise"},
	}
}

// List returns a copy; callers cannot mutate habit state around the tracker.
func (h *Habits) List() []Habit {
	out := make([]Habit, len(h.list))
	copy(out, h.list)
	return out
}

func (h *Habits) Len() int { return len(h.list) }

func (h *Habits) Get(id string) (Habit, bool) {
	for i := range h.list {
		if h.list[i].ID == id {
			return h.list[i], true
		}
	}
	return Habit{}, false
}

// Add creates a habit with a fresh id, not yet completed, streak 0.
func (h *Habits) Add(name string) (Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Habit{}, errors.New("habit name is required")
	}
	habit := Habit{ID: uuid.NewString(), Name: name}
	h.list = append(h.list, habit)
	return habit, nil
}

func (h *Habits) Remove(id string) error {
	for i := range h.list {
		if h.list[i].ID == id {
			h.list = append(h.list[:i], h.list[i+1:]...)
			return nil
		}
	}
	return ErrHabitNotFound
}

// Complete marks the habit done and bumps its streak. Completing an
// already-completed habit is a no-op and reports counted=false so callers
// skip rewards.
func (h *Habits) Complete(id string) (habit Habit, counted bool, err error) {
	for i := range h.list {
		if h.list[i].ID != id {
			continue
		}
		if h.list[i].Completed {
			return h.list[i], false, nil
		}
		h.list[i].Completed = true
		h.list[i].Streak++
		return h.list[i], true, nil
	}
	return Habit{}, false, ErrHabitNotFound
}

// NoneCompleted reports whether every habit is still uncompleted today.
// CompleteHabit consults this immediately before applying a completion so
// the day-streak bump cannot double-fire from a stale read.
func (h *Habits) NoneCompleted() bool {
	for i := range h.list {
		if h.list[i].Completed {
			return false
		}
	}
	return true
}

// ResetDay clears every completed flag and leaves streaks untouched.
func (h *Habits) ResetDay() {
	for i := range h.list {
		h.list[i].Completed = false
	}
}
