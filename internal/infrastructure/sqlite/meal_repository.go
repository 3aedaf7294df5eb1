package sqlite

import (
	"context"
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/mealtrack/backend/internal/domain"
)

// MealRepository persists meal entries in sqlite via gorm
type MealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

// ListByUser returns the user's full history, newest date first. Ids
// break ties within a date so the most recently logged entry leads.
func (r *MealRepository) ListByUser(ctx context.Context, username string) ([]domain.MealEntry, error) {
	var entries []domain.MealEntry
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListItems returns the distinct item names the user has logged,
// trimmed and sorted for the item picker.
func (r *MealRepository) ListItems(ctx context.Context, username string) ([]string, error) {
	var raw []string
	err := r.db.WithContext(ctx).
		Model(&domain.MealEntry{}).
		Where("username = ?", username).
		Distinct().
		Pluck("item", &raw).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(raw))
	items := make([]string, 0, len(raw))
	for _, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		items = append(items, name)
	}
	sort.Strings(items)
	return items, nil
}

func (r *MealRepository) GetByID(ctx context.Context, username string, id uint) (*domain.MealEntry, error) {
	var entry domain.MealEntry
	err := r.db.WithContext(ctx).
		First(&entry, "id = ? AND username = ?", id, username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *MealRepository) Create(ctx context.Context, entry *domain.MealEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// Update writes an entry's fields back, scoped to its owner. Updating
// an entry owned by someone else affects no rows and is reported as
// not found.
func (r *MealRepository) Update(ctx context.Context, entry *domain.MealEntry) error {
	result := r.db.WithContext(ctx).
		Model(&domain.MealEntry{}).
		Where("id = ? AND username = ?", entry.ID, entry.Username).
		Updates(map[string]interface{}{
			"date":                 entry.Date,
			"item":                 entry.Item,
			"weight_grams":         entry.WeightGrams,
			"serving_size_grams":   entry.ServingSizeGrams,
			"calories_per_serving": entry.CaloriesPerServing,
			"protein_per_serving":  entry.ProteinPerServing,
			"calories_total":       entry.CaloriesTotal,
			"protein_total":        entry.ProteinTotal,
			"meal_type":            entry.MealType,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *MealRepository) Delete(ctx context.Context, username string, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		Delete(&domain.MealEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}
