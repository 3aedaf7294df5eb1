package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/mealtrack/backend/internal/domain"
)

// MealInput carries the raw form fields for creating or editing a meal.
// Totals are not accepted from the caller.
type MealInput struct {
	Date               string
	Item               string
	WeightGrams        float64
	ServingSizeGrams   float64
	CaloriesPerServing float64
	ProteinPerServing  float64
	MealType           string
}

// Totals is a scaling preview for form input that has not been saved yet
type Totals struct {
	CaloriesTotal float64 `json:"caloriesTotal"`
	ProteinTotal  float64 `json:"proteinTotal"`
}

// MealService handles meal entry logging, history, and defaults recall
type MealService struct {
	meals domain.MealRepository
	cache domain.DefaultsCache
}

// NewMealService creates a meal service. The defaults cache is optional;
// a nil cache means defaults are derived from history on every call.
func NewMealService(meals domain.MealRepository, cache domain.DefaultsCache) *MealService {
	return &MealService{meals: meals, cache: cache}
}

// Create validates and stores a new meal entry with computed totals.
// A blank item name is a user-correctable validation error. A blank
// date defaults to today, matching the logging form's behavior.
func (s *MealService) Create(ctx context.Context, username string, in MealInput) (*domain.MealEntry, error) {
	item := strings.TrimSpace(in.Item)
	if item == "" {
		return nil, domain.ErrItemRequired
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	}

	entry := &domain.MealEntry{
		Username:           username,
		Date:               date,
		Item:               item,
		WeightGrams:        in.WeightGrams,
		ServingSizeGrams:   in.ServingSizeGrams,
		CaloriesPerServing: in.CaloriesPerServing,
		ProteinPerServing:  in.ProteinPerServing,
		MealType:           domain.NormalizeMealType(in.MealType),
	}
	ScaleEntry(entry)

	if err := s.meals.Create(ctx, entry); err != nil {
		return nil, err
	}
	s.invalidateDefaults(ctx, username)
	return entry, nil
}

// Update replaces an entry's fields and recomputes its totals. The
// entry must exist and belong to the calling user.
func (s *MealService) Update(ctx context.Context, username string, id uint, in MealInput) (*domain.MealEntry, error) {
	item := strings.TrimSpace(in.Item)
	if item == "" {
		return nil, domain.ErrItemRequired
	}

	entry, err := s.meals.GetByID(ctx, username, id)
	if err != nil {
		return nil, err
	}

	if date := strings.TrimSpace(in.Date); date != "" {
		entry.Date = date
	}
	entry.Item = item
	entry.WeightGrams = in.WeightGrams
	entry.ServingSizeGrams = in.ServingSizeGrams
	entry.CaloriesPerServing = in.CaloriesPerServing
	entry.ProteinPerServing = in.ProteinPerServing
	entry.MealType = domain.NormalizeMealType(in.MealType)
	ScaleEntry(entry)

	if err := s.meals.Update(ctx, entry); err != nil {
		return nil, err
	}
	s.invalidateDefaults(ctx, username)
	return entry, nil
}

// Delete removes an entry owned by the calling user
func (s *MealService) Delete(ctx context.Context, username string, id uint) error {
	if err := s.meals.Delete(ctx, username, id); err != nil {
		return err
	}
	s.invalidateDefaults(ctx, username)
	return nil
}

// History returns all of a user's entries, newest date first
func (s *MealService) History(ctx context.Context, username string) ([]domain.MealEntry, error) {
	return s.meals.ListByUser(ctx, username)
}

// Items returns the distinct item names the user has logged before
func (s *MealService) Items(ctx context.Context, username string) ([]string, error) {
	return s.meals.ListItems(ctx, username)
}

// Defaults recalls serving size and per-serving defaults for an item
// from the user's history. Absence of a prior match is not an error;
// the zero-valued defaults come back instead.
func (s *MealService) Defaults(ctx context.Context, username, item string) (domain.ItemDefaults, error) {
	key := strings.TrimSpace(item)
	if key == "" {
		return noMatchDefaults, nil
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, username, key); err == nil && cached != nil {
			return *cached, nil
		}
	}

	history, err := s.meals.ListByUser(ctx, username)
	if err != nil {
		return domain.ItemDefaults{}, err
	}
	defaults := DeriveDefaults(history, username, key)

	if s.cache != nil {
		// A failed cache write only costs the memoization
		_ = s.cache.Set(ctx, username, key, defaults)
	}
	return defaults, nil
}

// Preview computes the totals the entry would be stored with, for live
// display while the form is being filled in
func (s *MealService) Preview(in MealInput) Totals {
	return Totals{
		CaloriesTotal: Scale(in.WeightGrams, in.ServingSizeGrams, in.CaloriesPerServing),
		ProteinTotal:  Scale(in.WeightGrams, in.ServingSizeGrams, in.ProteinPerServing),
	}
}

func (s *MealService) invalidateDefaults(ctx context.Context, username string) {
	if s.cache != nil {
		_ = s.cache.InvalidateUser(ctx, username)
	}
}
