package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mealtrack/backend/internal/domain"
)

// noMatchDefaults are returned when an item has never been logged with
// a usable weight and serving size.
var noMatchDefaults = domain.ItemDefaults{ServingSizeGrams: 1}

// DeriveDefaults recalls serving size and per-serving nutrient defaults
// for an item from a user's meal history.
//
// Item names are compared after trimming whitespace but remain
// case-sensitive. Among matching entries with a positive weight and
// serving size, the one with the greatest id wins: ids reflect true
// creation order, while dates are user-editable. The per-serving values
// are back-computed from the stored totals, inverting the forward
// scaling so that re-deriving defaults reproduces the density that was
// originally entered.
func DeriveDefaults(history []domain.MealEntry, username, item string) domain.ItemDefaults {
	target := strings.TrimSpace(item)
	if target == "" {
		return noMatchDefaults
	}

	var best *domain.MealEntry
	for i := range history {
		e := &history[i]
		if e.Username != username {
			continue
		}
		if e.WeightGrams <= 0 || e.ServingSizeGrams <= 0 {
			continue
		}
		if strings.TrimSpace(e.Item) != target {
			continue
		}
		if best == nil || e.ID > best.ID {
			best = e
		}
	}
	if best == nil {
		return noMatchDefaults
	}

	return domain.ItemDefaults{
		ServingSizeGrams:   best.ServingSizeGrams,
		CaloriesPerServing: (best.CaloriesTotal / best.WeightGrams) * best.ServingSizeGrams,
		ProteinPerServing:  (best.ProteinTotal / best.WeightGrams) * best.ServingSizeGrams,
	}
}

// Aggregate partitions entries into time buckets and sums their totals.
//
// Day buckets on the calendar date, week on the ISO week number, and
// month on the (year, month) pair. Entries whose date does not parse
// are excluded. When a goal is present every row carries the goal's
// targets unchanged; goals are not date-ranged. Rows are ordered
// ascending by bucket key unless descending is requested. Empty input
// yields an empty result, not an error.
func Aggregate(entries []domain.MealEntry, period domain.Period, goal *domain.Goal, descending bool) []domain.SummaryRow {
	buckets := make(map[string]*domain.SummaryRow)
	for _, e := range entries {
		key, ok := bucketKey(e.Date, period)
		if !ok {
			continue
		}
		row := buckets[key]
		if row == nil {
			row = &domain.SummaryRow{Bucket: key}
			buckets[key] = row
		}
		row.ActualCalories += e.CaloriesTotal
		row.ActualProtein += e.ProteinTotal
	}

	rows := make([]domain.SummaryRow, 0, len(buckets))
	for _, row := range buckets {
		if goal != nil {
			targetCalories, targetProtein := goal.Calories, goal.Protein
			row.TargetCalories = &targetCalories
			row.TargetProtein = &targetProtein
		}
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if descending {
			return rows[i].Bucket > rows[j].Bucket
		}
		return rows[i].Bucket < rows[j].Bucket
	})
	return rows
}

// bucketKey derives the grouping key for one entry. Keys are zero-padded
// so that lexicographic order matches chronological order.
func bucketKey(date string, period domain.Period) (string, bool) {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return "", false
	}
	switch period {
	case domain.PeriodWeek:
		_, week := t.ISOWeek()
		return fmt.Sprintf("W%02d", week), true
	case domain.PeriodMonth:
		return t.Format("2006-01"), true
	default:
		return t.Format(domain.DateLayout), true
	}
}
