package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mealtrack/backend/internal/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err, "open in-memory database")
	return db
}

func TestMealRepository_CreateAndListOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewMealRepository(db)
	ctx := context.Background()

	entries := []domain.MealEntry{
		{Username: "alice", Date: "2024-01-02", Item: "Rice", CaloriesTotal: 100},
		{Username: "alice", Date: "2024-01-01", Item: "Eggs", CaloriesTotal: 78},
		{Username: "alice", Date: "2024-01-02", Item: "Chicken", CaloriesTotal: 165},
		{Username: "bob", Date: "2024-01-02", Item: "Oats", CaloriesTotal: 150},
	}
	for i := range entries {
		require.NoError(t, repo.Create(ctx, &entries[i]))
		assert.NotZero(t, entries[i].ID, "auto-increment id assigned")
	}

	got, err := repo.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 3, "only alice's entries")

	// Newest date first, newest id first within a date
	assert.Equal(t, "Chicken", got[0].Item)
	assert.Equal(t, "Rice", got[1].Item)
	assert.Equal(t, "Eggs", got[2].Item)
}

func TestMealRepository_ListItems(t *testing.T) {
	db := openTestDB(t)
	repo := NewMealRepository(db)
	ctx := context.Background()

	for _, e := range []domain.MealEntry{
		{Username: "alice", Date: "2024-01-01", Item: "Rice"},
		{Username: "alice", Date: "2024-01-02", Item: "  Rice "},
		{Username: "alice", Date: "2024-01-03", Item: "Eggs"},
		{Username: "bob", Date: "2024-01-01", Item: "Oats"},
	} {
		entry := e
		require.NoError(t, repo.Create(ctx, &entry))
	}

	items, err := repo.ListItems(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Eggs", "Rice"}, items, "trimmed, deduplicated, sorted")
}

func TestMealRepository_GetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewMealRepository(db)
	ctx := context.Background()

	entry := domain.MealEntry{Username: "alice", Date: "2024-01-01", Item: "Rice"}
	require.NoError(t, repo.Create(ctx, &entry))

	got, err := repo.GetByID(ctx, "alice", entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rice", got.Item)

	_, err = repo.GetByID(ctx, "bob", entry.ID)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound, "cross-user read is not found")

	_, err = repo.GetByID(ctx, "alice", entry.ID+100)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestMealRepository_Update(t *testing.T) {
	db := openTestDB(t)
	repo := NewMealRepository(db)
	ctx := context.Background()

	entry := domain.MealEntry{
		Username: "alice", Date: "2024-01-01", Item: "Rice",
		WeightGrams: 100, ServingSizeGrams: 100,
		CaloriesPerServing: 130, ProteinPerServing: 2.7,
		CaloriesTotal: 130, ProteinTotal: 2.7,
		MealType: domain.MealTypeLunch,
	}
	require.NoError(t, repo.Create(ctx, &entry))

	entry.Date = "2024-01-02"
	entry.WeightGrams = 200
	entry.CaloriesTotal = 260
	entry.ProteinTotal = 5.4
	entry.MealType = domain.MealTypeDinner
	require.NoError(t, repo.Update(ctx, &entry))

	got, err := repo.GetByID(ctx, "alice", entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", got.Date)
	assert.Equal(t, 260.0, got.CaloriesTotal)
	assert.Equal(t, domain.MealTypeDinner, got.MealType)

	// Mutation under another owner must be rejected by the store
	foreign := *got
	foreign.Username = "mallory"
	foreign.CaloriesTotal = 0
	assert.ErrorIs(t, repo.Update(ctx, &foreign), domain.ErrEntryNotFound)

	unchanged, err := repo.GetByID(ctx, "alice", entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 260.0, unchanged.CaloriesTotal, "entry untouched by foreign update")
}

func TestMealRepository_Delete(t *testing.T) {
	db := openTestDB(t)
	repo := NewMealRepository(db)
	ctx := context.Background()

	entry := domain.MealEntry{Username: "alice", Date: "2024-01-01", Item: "Rice"}
	require.NoError(t, repo.Create(ctx, &entry))

	assert.ErrorIs(t, repo.Delete(ctx, "mallory", entry.ID), domain.ErrEntryNotFound)
	require.NoError(t, repo.Delete(ctx, "alice", entry.ID))
	assert.ErrorIs(t, repo.Delete(ctx, "alice", entry.ID), domain.ErrEntryNotFound)
}
