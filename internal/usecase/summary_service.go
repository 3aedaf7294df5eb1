package usecase

import (
	"context"
	"errors"

	"github.com/mealtrack/backend/internal/domain"
)

// SummaryService aggregates a user's meal history into bucketed totals
// compared against their goal
type SummaryService struct {
	meals domain.MealRepository
	goals domain.GoalRepository
}

func NewSummaryService(meals domain.MealRepository, goals domain.GoalRepository) *SummaryService {
	return &SummaryService{meals: meals, goals: goals}
}

// Summarize buckets the user's entries by the requested period. When
// the user has no goal the rows simply omit the target columns.
func (s *SummaryService) Summarize(ctx context.Context, username string, period domain.Period, descending bool) ([]domain.SummaryRow, error) {
	entries, err := s.meals.ListByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	goal, err := s.goals.Get(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrGoalNotFound) {
			return nil, err
		}
		goal = nil
	}

	return Aggregate(entries, period, goal, descending), nil
}
