package usecase

import "github.com/mealtrack/backend/internal/domain"

// Scale converts a measured weight and a per-serving nutrient value into
// the absolute nutrient amount for the portion consumed.
//
// A non-positive serving size yields zero instead of a division error:
// the caller's form may transiently hold an invalid serving size before
// the user corrects it. No rounding is applied; display rounding is the
// presentation layer's concern.
func Scale(weightGrams, servingSizeGrams, perServing float64) float64 {
	if servingSizeGrams <= 0 {
		return 0
	}
	return (weightGrams / servingSizeGrams) * perServing
}

// ScaleEntry fills an entry's derived totals from its weight, serving
// size, and per-serving inputs. Runs at create and edit time so the
// totals are never caller-supplied.
func ScaleEntry(entry *domain.MealEntry) {
	entry.CaloriesTotal = Scale(entry.WeightGrams, entry.ServingSizeGrams, entry.CaloriesPerServing)
	entry.ProteinTotal = Scale(entry.WeightGrams, entry.ServingSizeGrams, entry.ProteinPerServing)
}
