package domain

import "context"

// MealRepository defines the interface for meal entry persistence.
// All reads and mutations are scoped to the owning user; mutating an
// entry owned by another user yields ErrEntryNotFound.
type MealRepository interface {
	// ListByUser returns all entries for a user ordered by date
	// descending, then by id descending within a date.
	ListByUser(ctx context.Context, username string) ([]MealEntry, error)
	// ListItems returns the distinct trimmed item names a user has
	// logged before, sorted.
	ListItems(ctx context.Context, username string) ([]string, error)
	GetByID(ctx context.Context, username string, id uint) (*MealEntry, error)
	Create(ctx context.Context, entry *MealEntry) error
	Update(ctx context.Context, entry *MealEntry) error
	Delete(ctx context.Context, username string, id uint) error
}

// GoalRepository defines the interface for goal persistence
type GoalRepository interface {
	// Get returns ErrGoalNotFound when the user has no goal on record
	Get(ctx context.Context, username string) (*Goal, error)
	Upsert(ctx context.Context, goal *Goal) error
}

// UserRepository defines the interface for user account persistence
type UserRepository interface {
	Get(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, user *User) error
	Count(ctx context.Context) (int64, error)
}

// DefaultsCache defines the interface for memoizing derived item
// defaults between form loads
type DefaultsCache interface {
	Get(ctx context.Context, username, item string) (*ItemDefaults, error)
	Set(ctx context.Context, username, item string, defaults ItemDefaults) error
	// InvalidateUser drops every cached item for a user; called whenever
	// the user's meal history changes.
	InvalidateUser(ctx context.Context, username string) error
}
