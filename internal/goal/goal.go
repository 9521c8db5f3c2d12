// Package goal defines the core domain types for tracked goals.
package goal

import (
	"errors"
	"strings"
	"time"
)

// Goal is a single tracked goal. Its 1-based position in the goal list is its ID.
type Goal struct {
	Title     string `json:"title"`      // Required: stored verbatim
	Status    Status `json:"status"`     // Required: todo, doing, or done
	CreatedAt string `json:"created_at"` // RFC3339 UTC, set once on create
}

// Numbered pairs a goal with its 1-based position in the list.
type Numbered struct {
	ID   int  `json:"id"`
	Goal Goal `json:"goal"`
}

// Clock returns the current time. Injected so timestamps are deterministic in tests.
type Clock func() time.Time

// SystemClock is the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// Timestamp formats t the way created_at and export timestamps are stored.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Validation errors.
var (
	ErrEmptyTitle     = errors.New("title is required")
	ErrEmptyCreatedAt = errors.New("created_at is required")
)

// New creates a todo goal stamped with the given creation time.
func New(title string, now time.Time) (Goal, error) {
	if strings.TrimSpace(title) == "" {
		return Goal{}, ErrEmptyTitle
	}
	return Goal{
		Title:     title,
		Status:    StatusTodo,
		CreatedAt: Timestamp(now),
	}, nil
}

// Validate checks that every field of a stored goal is well formed.
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return ErrEmptyTitle
	}
	if !g.Status.IsValid() {
		return ErrInvalidStatus
	}
	if g.CreatedAt == "" {
		return ErrEmptyCreatedAt
	}
	return nil
}

// Number attaches 1-based positions to goals in list order.
func Number(goals []Goal) []Numbered {
	out := make([]Numbered, len(goals))
	for i, g := range goals {
		out[i] = Numbered{ID: i + 1, Goal: g}
	}
	return out
}

// InRange reports whether id is a valid 1-based position in a list of n goals.
func InRange(id, n int) bool {
	return id >= 1 && id <= n
}
