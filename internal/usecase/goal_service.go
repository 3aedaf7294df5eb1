package usecase

import (
	"context"

	"github.com/mealtrack/backend/internal/domain"
)

// GoalService handles a user's daily calorie/protein targets
type GoalService struct {
	goals domain.GoalRepository
}

func NewGoalService(goals domain.GoalRepository) *GoalService {
	return &GoalService{goals: goals}
}

// Get returns the user's goal, or ErrGoalNotFound when none is set.
// A missing goal is a normal state, not a failure.
func (s *GoalService) Get(ctx context.Context, username string) (*domain.Goal, error) {
	return s.goals.Get(ctx, username)
}

// Save creates or replaces the user's goal wholesale. There is no
// partial update and no history of prior goals.
func (s *GoalService) Save(ctx context.Context, username string, calories, protein float64) (*domain.Goal, error) {
	if calories < 0 || protein < 0 {
		return nil, domain.ErrInvalidRequest
	}
	goal := &domain.Goal{Username: username, Calories: calories, Protein: protein}
	if err := s.goals.Upsert(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}
