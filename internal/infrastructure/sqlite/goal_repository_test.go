package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealtrack/backend/internal/domain"
)

func TestGoalRepository_Upsert(t *testing.T) {
	db := openTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrGoalNotFound, "no goal before first save")

	require.NoError(t, repo.Upsert(ctx, &domain.Goal{Username: "alice", Calories: 2000, Protein: 150}))

	goal, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, goal.Calories)
	assert.Equal(t, 150.0, goal.Protein)

	// A second save replaces the record wholesale
	require.NoError(t, repo.Upsert(ctx, &domain.Goal{Username: "alice", Calories: 1800, Protein: 120}))

	goal, err = repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1800.0, goal.Calories)
	assert.Equal(t, 120.0, goal.Protein)

	var count int64
	require.NoError(t, db.Model(&domain.Goal{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "at most one goal per user")
}

func TestGoalRepository_IsPerUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.Goal{Username: "alice", Calories: 2000, Protein: 150}))

	_, err := repo.Get(ctx, "bob")
	assert.ErrorIs(t, err, domain.ErrGoalNotFound)
}

func TestUserRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	_, err = repo.Get(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "hash"}))

	err = repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "other"})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	user, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash", user.PasswordHash)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
