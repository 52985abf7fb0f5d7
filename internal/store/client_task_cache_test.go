package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestTaskCache(t *testing.T) TaskCacheRepository {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	cache, err := NewTaskCacheRepository(&DB{DB: conn, logger: logger.Nop()}, logger.Nop())
	require.NoError(t, err)
	return cache
}

func cachedTask(taskID, userID int64, title string, createdAt time.Time) models.Task {
	return models.Task{
		TaskID:    taskID,
		UserID:    userID,
		Title:     title,
		Status:    models.StatusToDo,
		CreatedAt: createdAt,
	}
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestTaskCache_ReplaceAllAndGetAll(t *testing.T) {
	cache := newTestTaskCache(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	err := cache.ReplaceAll(ctx, 7, []models.Task{
		cachedTask(1, 7, "oldest", now.Add(-2*time.Hour)),
		cachedTask(3, 7, "newest", now),
		cachedTask(2, 7, "middle", now.Add(-time.Hour)),
	})
	require.NoError(t, err)

	tasks, err := cache.GetAll(ctx, 7)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, "newest", tasks[0].Title)
	assert.Equal(t, "middle", tasks[1].Title)
	assert.Equal(t, "oldest", tasks[2].Title)
}

func TestTaskCache_ReplaceAllDropsPreviousSnapshot(t *testing.T) {
	cache := newTestTaskCache(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, cache.ReplaceAll(ctx, 7, []models.Task{
		cachedTask(1, 7, "stale", now),
		cachedTask(2, 7, "also stale", now),
	}))

	require.NoError(t, cache.ReplaceAll(ctx, 7, []models.Task{
		cachedTask(3, 7, "fresh", now),
	}))

	tasks, err := cache.GetAll(ctx, 7)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "fresh", tasks[0].Title)
}

func TestTaskCache_ReplaceAllWithEmptyListClears(t *testing.T) {
	cache := newTestTaskCache(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, cache.ReplaceAll(ctx, 7, []models.Task{cachedTask(1, 7, "task", now)}))
	require.NoError(t, cache.ReplaceAll(ctx, 7, nil))

	tasks, err := cache.GetAll(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskCache_OwnersAreIsolated(t *testing.T) {
	cache := newTestTaskCache(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, cache.ReplaceAll(ctx, 7, []models.Task{cachedTask(1, 7, "mine", now)}))
	require.NoError(t, cache.ReplaceAll(ctx, 8, []models.Task{cachedTask(2, 8, "theirs", now)}))

	mine, err := cache.GetAll(ctx, 7)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].Title)

	// replacing one owner's snapshot must not touch the other's
	require.NoError(t, cache.ReplaceAll(ctx, 7, nil))

	theirs, err := cache.GetAll(ctx, 8)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, "theirs", theirs[0].Title)
}

func TestTaskCache_Clear(t *testing.T) {
	cache := newTestTaskCache(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, cache.ReplaceAll(ctx, 7, []models.Task{cachedTask(1, 7, "task", now)}))
	require.NoError(t, cache.Clear(ctx, 7))

	tasks, err := cache.GetAll(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskCache_ClearUnknownOwnerIsNoop(t *testing.T) {
	cache := newTestTaskCache(t)

	assert.NoError(t, cache.Clear(context.Background(), 404))
}
