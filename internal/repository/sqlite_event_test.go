package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/dayflow/internal/domain"
	"github.com/alexanderramin/dayflow/internal/testutil"
)

var repoDay = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func TestEventRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	ev := testutil.NewTestEvent("Standup", repoDay.Add(9*time.Hour), 15)
	ev.Description = "daily"
	require.NoError(t, repo.Create(ctx, &ev, 0))

	fetched, err := repo.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Standup", fetched.Title)
	assert.Equal(t, "daily", fetched.Description)
	assert.True(t, ev.StartTime.Equal(fetched.StartTime))
	assert.Equal(t, 15*time.Minute, fetched.Duration())
}

func TestEventRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventRepo_RejectsEmptyRange(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))

	ev := testutil.NewTestEvent("Zero", repoDay, 0)
	assert.Error(t, repo.Create(context.Background(), &ev, 0))
}

func TestEventRepo_ReplaceAllKeepsInsertionOrder(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	events := []domain.CalendarEvent{
		testutil.NewTestEvent("Late", repoDay.Add(15*time.Hour), 30),
		testutil.NewTestEvent("Early", repoDay.Add(8*time.Hour), 30),
	}
	require.NoError(t, repo.ReplaceAll(ctx, events))
	require.NoError(t, repo.ReplaceAll(ctx, events))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Late", listed[0].Title)
	assert.Equal(t, "Early", listed[1].Title)
}
