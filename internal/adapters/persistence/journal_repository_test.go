package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellsim/tellsim-go/internal/adapters/persistence"
	"github.com/tellsim/tellsim-go/internal/domain/shared"
	"github.com/tellsim/tellsim-go/test/helpers"
)

func TestJournalRepository_AppendAndRecent(t *testing.T) {
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	repo := persistence.NewGormJournalRepository(db, clock)

	require.NoError(t, repo.Append(context.Background(), "info", "Hired 3 worker(s)"))
	clock.Advance(time.Minute)
	require.NoError(t, repo.Append(context.Background(), "warn", "Inventory full"))
	clock.Advance(time.Minute)
	require.NoError(t, repo.Append(context.Background(), "info", "Sold for $120"))

	entries, err := repo.Recent(context.Background(), 10, nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// newest first
	assert.Equal(t, "Sold for $120", entries[0].Message)
	assert.Equal(t, "Hired 3 worker(s)", entries[2].Message)
}

func TestJournalRepository_RecentFiltersByLevel(t *testing.T) {
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	repo := persistence.NewGormJournalRepository(db, clock)

	require.NoError(t, repo.Append(context.Background(), "info", "Surveyed Ur"))
	clock.Advance(time.Second)
	require.NoError(t, repo.Append(context.Background(), "warn", "Task cancelled"))

	level := "warn"
	entries, err := repo.Recent(context.Background(), 10, &level)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Task cancelled", entries[0].Message)
}

func TestJournalRepository_DeduplicatesWithinWindow(t *testing.T) {
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	repo := persistence.NewGormJournalRepository(db, clock)

	require.NoError(t, repo.Append(context.Background(), "info", "Hired 1 worker(s)"))
	clock.Advance(10 * time.Second)
	require.NoError(t, repo.Append(context.Background(), "info", "Hired 1 worker(s)"))

	entries, err := repo.Recent(context.Background(), 10, nil)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// past the window the same message is journaled again
	clock.Advance(2 * time.Minute)
	require.NoError(t, repo.Append(context.Background(), "info", "Hired 1 worker(s)"))

	entries, err = repo.Recent(context.Background(), 10, nil)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
