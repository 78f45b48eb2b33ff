package task

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) (context.Context, *RepositoryImpl, int, int) {
	ctx := context.Background()
	db := test_utils.SetupTestDB(t)
	userId, weddingId := seedWedding(t, db)
	return ctx, NewRepository(db), userId, weddingId
}

func seedWedding(t *testing.T, db *sql.DB) (int, int) {
	t.Helper()
	result, err := db.Exec(
		`INSERT INTO users (uid, username, display_name) VALUES (?, ?, ?)`,
		"test-uid", "tester", "Tester",
	)
	require.NoError(t, err)
	userId, err := result.LastInsertId()
	require.NoError(t, err)

	result, err = db.Exec(
		`INSERT INTO wedding (bride_name, groom_name, wedding_date, city, total_budget, user_id)
			VALUES (?, ?, ?, ?, ?, ?)`,
		"Priya", "Rahul", time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC).UnixMilli(), "Jaipur", 0, userId,
	)
	require.NoError(t, err)
	weddingId, err := result.LastInsertId()
	require.NoError(t, err)
	return int(userId), int(weddingId)
}

func TestRepositoryImpl_StoreTask_RoundTrip(t *testing.T) {
	// given
	ctx, repo, userId, weddingId := setupTestRepository(t)
	completedAt := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	stored := Task{
		WeddingId:   weddingId,
		Title:       "Book mehendi artist",
		DueDate:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Done:        true,
		Priority:    PriorityHigh,
		Category:    "vendors",
		CompletedAt: &completedAt,
	}

	// when
	id, err := repo.StoreTask(ctx, userId, stored)
	assert.NoError(t, err)

	// then
	found, err := repo.GetTask(ctx, userId, id)
	assert.NoError(t, err)
	assert.Equal(t, "Book mehendi artist", found.Title)
	assert.Equal(t, stored.DueDate.UnixMilli(), found.DueDate.UnixMilli())
	assert.True(t, found.Done)
	assert.Equal(t, PriorityHigh, found.Priority)
	require.NotNil(t, found.CompletedAt)
	assert.Equal(t, completedAt.UnixMilli(), found.CompletedAt.UnixMilli())
}

func TestRepositoryImpl_GetTasks_OrdersByDueDate(t *testing.T) {
	// given
	ctx, repo, userId, weddingId := setupTestRepository(t)
	_, err := repo.StoreTask(ctx, userId, Task{WeddingId: weddingId, Title: "Send invites",
		DueDate: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), Priority: PriorityMedium})
	require.NoError(t, err)
	_, err = repo.StoreTask(ctx, userId, Task{WeddingId: weddingId, Title: "Finalize venue",
		DueDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), Priority: PriorityHigh})
	require.NoError(t, err)

	// when
	tasks, err := repo.GetTasks(ctx, userId, weddingId)

	// then
	assert.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Finalize venue", tasks[0].Title)
	assert.Equal(t, "Send invites", tasks[1].Title)
}

func TestRepositoryImpl_UpdateTask_ClearsCompletedAt(t *testing.T) {
	// given
	ctx, repo, userId, weddingId := setupTestRepository(t)
	completedAt := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	stored := Task{WeddingId: weddingId, Title: "Order sherwani",
		DueDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Done:    true, Priority: PriorityLow, CompletedAt: &completedAt}
	id, err := repo.StoreTask(ctx, userId, stored)
	require.NoError(t, err)
	stored.Id = id
	stored.Done = false
	stored.CompletedAt = nil

	// when
	err = repo.UpdateTask(ctx, userId, stored)

	// then
	assert.NoError(t, err)
	found, err := repo.GetTask(ctx, userId, id)
	assert.NoError(t, err)
	assert.False(t, found.Done)
	assert.Nil(t, found.CompletedAt)
}

func TestRepositoryImpl_DeleteTask(t *testing.T) {
	// given
	ctx, repo, userId, weddingId := setupTestRepository(t)
	id, err := repo.StoreTask(ctx, userId, Task{WeddingId: weddingId, Title: "Book DJ",
		DueDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), Priority: PriorityMedium})
	require.NoError(t, err)

	// when
	err = repo.DeleteTask(ctx, userId, id)

	// then
	assert.NoError(t, err)
	_, err = repo.GetTask(ctx, userId, id)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestRepositoryImpl_GetTask_ScopedToUser(t *testing.T) {
	// given
	ctx, repo, userId, weddingId := setupTestRepository(t)
	id, err := repo.StoreTask(ctx, userId, Task{WeddingId: weddingId, Title: "Taste menu",
		DueDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), Priority: PriorityMedium})
	require.NoError(t, err)

	// when
	_, err = repo.GetTask(ctx, userId+1, id)

	// then
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
