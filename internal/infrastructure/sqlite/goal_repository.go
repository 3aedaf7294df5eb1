package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mealtrack/backend/internal/domain"
)

// GoalRepository persists the single per-user goal record
type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Get(ctx context.Context, username string) (*domain.Goal, error) {
	var goal domain.Goal
	err := r.db.WithContext(ctx).First(&goal, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// Upsert creates the goal or replaces it wholesale
func (r *GoalRepository) Upsert(ctx context.Context, goal *domain.Goal) error {
	var existing domain.Goal
	err := r.db.WithContext(ctx).First(&existing, "username = ?", goal.Username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(goal).Error
	}
	if err != nil {
		return err
	}

	existing.Calories = goal.Calories
	existing.Protein = goal.Protein
	return r.db.WithContext(ctx).Save(&existing).Error
}
