package domain

import (
	"context"
	"time"
)

// Habit represents a user-owned tracked behavior with its completion history.
type Habit struct {
	ID             string    `json:"id"`
	OwnerID        int64     `json:"ownerId"`
	Name           string    `json:"name"`
	CompletedDates []string  `json:"completedDates"`
	CreatedAt      time.Time `json:"createdAt"`
}

// HabitRepository is the port for habit persistence. The store assigns the
// habit ID on insert; all other operations address habits by that ID.
type HabitRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]Habit, error)
	GetByID(ctx context.Context, id string) (*Habit, error)
	Insert(ctx context.Context, ownerID int64, name string, createdAt time.Time) (*Habit, error)
	SetCompletedDates(ctx context.Context, id string, dates []string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
