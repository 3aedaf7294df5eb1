package domain

import "strings"

// DateLayout is the calendar-date format used for meal entries.
// Dates carry no time-of-day component.
const DateLayout = "2006-01-02"

// Meal type values accepted for a meal entry
const (
	MealTypeBreakfast = "Breakfast"
	MealTypeLunch     = "Lunch"
	MealTypeDinner    = "Dinner"
	MealTypeSnack     = "Snack"
	MealTypeOther     = "Other"
)

// MealTypes lists the accepted meal type values in display order
var MealTypes = []string{
	MealTypeBreakfast,
	MealTypeLunch,
	MealTypeDinner,
	MealTypeSnack,
	MealTypeOther,
}

// NormalizeMealType maps unset or unrecognized meal types to "Other"
func NormalizeMealType(mealType string) string {
	mealType = strings.TrimSpace(mealType)
	for _, mt := range MealTypes {
		if mealType == mt {
			return mt
		}
	}
	return MealTypeOther
}

// MealEntry is one logged meal instance. The total fields are always
// derived from weight, serving size, and the per-serving inputs at
// create and edit time - never entered independently.
type MealEntry struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	Username           string  `gorm:"index;not null" json:"-"`
	Date               string  `gorm:"index;not null" json:"date"` // YYYY-MM-DD
	Item               string  `gorm:"not null" json:"item"`
	WeightGrams        float64 `json:"weightGrams"`
	ServingSizeGrams   float64 `json:"servingSizeGrams"`
	CaloriesPerServing float64 `json:"caloriesPerServing"`
	ProteinPerServing  float64 `json:"proteinPerServing"`
	CaloriesTotal      float64 `json:"caloriesTotal"`
	ProteinTotal       float64 `json:"proteinTotal"`
	MealType           string  `gorm:"default:Other" json:"mealType"`
}

// TableName keeps the table name used by earlier versions of the tracker
func (MealEntry) TableName() string { return "meals" }

// Goal holds a user's daily calorie and protein targets. At most one
// per user; saves replace the record wholesale.
type Goal struct {
	Username string  `gorm:"primaryKey" json:"-"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
}

func (Goal) TableName() string { return "goals" }

// ItemDefaults is a derived projection over a user's meal history for
// one item name, used to pre-populate a new entry's form fields. It is
// never stored.
type ItemDefaults struct {
	ServingSizeGrams   float64 `json:"servingSizeGrams"`
	CaloriesPerServing float64 `json:"caloriesPerServing"`
	ProteinPerServing  float64 `json:"proteinPerServing"`
}

// Period selects the time-bucket granularity for summary aggregation
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod converts a caller-supplied string into a Period
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodDay, "":
		return PeriodDay, nil
	case PeriodWeek:
		return PeriodWeek, nil
	case PeriodMonth:
		return PeriodMonth, nil
	}
	return "", ErrInvalidPeriod
}

// SummaryRow is one bucket of aggregated totals. Target fields are only
// present when the user has a goal on record; goals are not date-ranged,
// so the same targets repeat on every row.
type SummaryRow struct {
	Bucket         string   `json:"bucket"`
	ActualCalories float64  `json:"actualCalories"`
	ActualProtein  float64  `json:"actualProtein"`
	TargetCalories *float64 `json:"targetCalories,omitempty"`
	TargetProtein  *float64 `json:"targetProtein,omitempty"`
}
