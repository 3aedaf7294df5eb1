package sqlite

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mealtrack/backend/internal/domain"
)

// Open opens (creating if necessary) the sqlite database at path and
// migrates the schema. Use ":memory:" for an ephemeral database.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.MealEntry{}, &domain.Goal{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Rows logged before meal types existed carry no type; normalize them
	// so lookups never see a blank value.
	if err := db.Model(&domain.MealEntry{}).
		Where("meal_type IS NULL OR TRIM(meal_type) = ''").
		Update("meal_type", domain.MealTypeOther).Error; err != nil {
		return nil, fmt.Errorf("failed to backfill meal types: %w", err)
	}

	return db, nil
}
