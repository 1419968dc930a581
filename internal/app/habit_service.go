package app

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"habittracker/internal/domain"
)

var (
	// ErrEmptyName indicates that a habit name was empty or whitespace-only.
	ErrEmptyName = errors.New("habit name cannot be empty")
	// ErrBadDate indicates that a completion date was not a YYYY-MM-DD string.
	ErrBadDate = errors.New("date must be YYYY-MM-DD")
	// ErrHabitNotFound indicates that the habit does not exist.
	ErrHabitNotFound = errors.New("habit not found")
	// ErrPermissionDenied indicates that the habit belongs to a different user.
	ErrPermissionDenied = errors.New("habit belongs to another user")
)

const dayLayout = "2006-01-02"

// HabitService encapsulates habit CRUD and completion-tracking use cases.
// Every operation is scoped by the calling user's identity; a habit is only
// visible to and mutable by its owner.
type HabitService struct {
	repo domain.HabitRepository
}

// NewHabitService creates a HabitService backed by the given repository.
func NewHabitService(repo domain.HabitRepository) *HabitService {
	return &HabitService{repo: repo}
}

// List returns all habits owned by the given user. A user with no habits
// gets an empty slice, not an error.
func (s *HabitService) List(ctx context.Context, ownerID int64) ([]domain.Habit, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create validates and normalizes a habit name, then persists a new habit
// with an empty completion set. The store assigns the ID.
func (s *HabitService) Create(ctx context.Context, ownerID int64, rawName string) (*domain.Habit, error) {
	name := NormalizeName(rawName)
	if name == "" {
		return nil, ErrEmptyName
	}
	return s.repo.Insert(ctx, ownerID, name, time.Now())
}

// SetCompletion marks a date as completed or not for a habit. Setting a date
// to its current state is a no-op for the caller: the stored set is
// recomputed and written either way, and double application yields the same
// result. Returns the habit as persisted.
func (s *HabitService) SetCompletion(ctx context.Context, ownerID int64, habitID, date string, completed bool) (*domain.Habit, error) {
	if _, err := time.Parse(dayLayout, date); err != nil {
		return nil, ErrBadDate
	}

	habit, err := s.getOwned(ctx, ownerID, habitID)
	if err != nil {
		return nil, err
	}

	dates := habit.CompletedDates
	if domain.IsCompletedOn(dates, date) != completed {
		dates = domain.ToggleDate(dates, date)
	}
	return s.write(ctx, habit, dates)
}

// Toggle flips today's completion state for a habit and returns the habit as
// persisted. The whole date set is overwritten; concurrent toggles from two
// sessions are last-write-wins.
func (s *HabitService) Toggle(ctx context.Context, ownerID int64, habitID, today string) (*domain.Habit, error) {
	if _, err := time.Parse(dayLayout, today); err != nil {
		return nil, ErrBadDate
	}

	habit, err := s.getOwned(ctx, ownerID, habitID)
	if err != nil {
		return nil, err
	}

	return s.write(ctx, habit, domain.ToggleDate(habit.CompletedDates, today))
}

// Delete permanently removes a habit. Deleting an absent habit fails with
// ErrHabitNotFound, including on a repeated delete.
func (s *HabitService) Delete(ctx context.Context, ownerID int64, habitID string) error {
	if _, err := s.getOwned(ctx, ownerID, habitID); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, habitID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrHabitNotFound
	}
	return nil
}

func (s *HabitService) getOwned(ctx context.Context, ownerID int64, habitID string) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}
	if habit.OwnerID != ownerID {
		return nil, ErrPermissionDenied
	}
	return habit, nil
}

func (s *HabitService) write(ctx context.Context, habit *domain.Habit, dates []string) (*domain.Habit, error) {
	ok, err := s.repo.SetCompletedDates(ctx, habit.ID, dates)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrHabitNotFound
	}
	updated := *habit
	updated.CompletedDates = dates
	return &updated, nil
}

// NormalizeName trims whitespace and upper-cases the first rune, leaving the
// remainder unchanged. Returns "" for whitespace-only input.
func NormalizeName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}
