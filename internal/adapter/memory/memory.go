// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"habittracker/internal/domain"

	"github.com/google/uuid"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	habits   map[string]*domain.Habit
	users    []*domain.User
	sessions map[string]*domain.Session

	userIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		habits:   make(map[string]*domain.Habit),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.HabitRepository = (*DB)(nil)
var _ domain.UserRepository = (*UserRepo)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- HabitRepository ---

// ListByOwner returns the owner's habits, oldest first.
func (db *DB) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Habit, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.Habit, 0)
	for _, h := range db.habits {
		if h.OwnerID == ownerID {
			result = append(result, copyHabit(h))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// GetByID retrieves a habit by ID.
func (db *DB) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	h, ok := db.habits[id]
	if !ok {
		return nil, nil
	}
	c := copyHabit(h)
	return &c, nil
}

// Insert stores a new habit, assigning it an ID.
func (db *DB) Insert(ctx context.Context, ownerID int64, name string, createdAt time.Time) (*domain.Habit, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	h := &domain.Habit{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		Name:           name,
		CompletedDates: []string{},
		CreatedAt:      createdAt.UTC(),
	}
	db.habits[h.ID] = h
	c := copyHabit(h)
	return &c, nil
}

// SetCompletedDates overwrites a habit's completion set.
func (db *DB) SetCompletedDates(ctx context.Context, id string, dates []string) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	h, ok := db.habits[id]
	if !ok {
		return false, nil
	}
	h.CompletedDates = append([]string(nil), dates...)
	return true, nil
}

// Delete removes a habit by ID.
func (db *DB) Delete(ctx context.Context, id string) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.habits[id]; !ok {
		return false, nil
	}
	delete(db.habits, id)
	return true, nil
}

func copyHabit(h *domain.Habit) domain.Habit {
	c := *h
	c.CompletedDates = append([]string{}, h.CompletedDates...)
	return c
}

// --- UserRepository ---

// UserRepo implements user persistence.
type UserRepo struct {
	db *DB
}

// NewUserRepo creates a new user repository.
func (db *DB) NewUserRepo() *UserRepo {
	return &UserRepo{db: db}
}

// GetByEmail retrieves a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (r *UserRepo) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Email == email {
			return nil, errors.New("user already exists")
		}
	}

	r.db.userIDCounter++
	u := &domain.User{
		ID:           r.db.userIDCounter,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.db.users = append(r.db.users, u)
	return u, nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		return s, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
