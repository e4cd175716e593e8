package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalRepo_AppendAndGetByID(t *testing.T) {
	repo := NewSQLiteJournalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	e := testutil.NewTestJournalEntry(3, "I greeted a new family.")
	require.NoError(t, repo.Append(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, domain.JournalDaily, got.Kind)
	assert.Equal(t, domain.OfficeDeacon, got.Office)
	assert.Equal(t, 3, got.Day)
	assert.Equal(t, "I greeted a new family.", got.Response)
	assert.Nil(t, got.Responses)
	assert.WithinDuration(t, e.CreatedAt, got.CreatedAt, time.Second)
}

func TestJournalRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteJournalRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJournalRepo_WeeklyResponsesRoundTrip(t *testing.T) {
	repo := NewSQLiteJournalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	answers := map[string]string{"ordinance": "peaceful", "commitment": "home teach"}
	e := testutil.NewTestJournalEntry(7, "",
		testutil.WithJournalKind(domain.JournalWeekly),
		testutil.WithResponses(answers))
	require.NoError(t, repo.Append(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, answers, got.Responses)
}

func TestJournalRepo_ListRecentNewestFirst(t *testing.T) {
	repo := NewSQLiteJournalRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	for i := 1; i <= 4; i++ {
		e := testutil.NewTestJournalEntry(i, "r", testutil.WithCreatedAt(base.AddDate(0, 0, i)))
		require.NoError(t, repo.Append(ctx, e))
	}

	all, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, 4, all[0].Day)
	assert.Equal(t, 1, all[3].Day)

	two, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, []int{4, 3}, []int{two[0].Day, two[1].Day})
}

func TestJournalRepo_ListByDay(t *testing.T) {
	repo := NewSQLiteJournalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.NewTestJournalEntry(7, "a", testutil.WithJournalKind(domain.JournalWeekly))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestJournalEntry(7, "b", testutil.WithJournalKind(domain.JournalSunday))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestJournalEntry(8, "c")))

	entries, err := repo.ListByDay(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestJournalRepo_WrittenAtFiltersKind(t *testing.T) {
	repo := NewSQLiteJournalRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, testutil.NewTestJournalEntry(1, "a", testutil.WithCreatedAt(base))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestJournalEntry(2, "b", testutil.WithCreatedAt(base.AddDate(0, 0, 1)))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestJournalEntry(7, "",
		testutil.WithJournalKind(domain.JournalWeekly),
		testutil.WithResponses(map[string]string{"habit": "x"}),
		testutil.WithCreatedAt(base.AddDate(0, 0, 6)))))

	got, err := repo.WrittenAt(ctx, domain.JournalDaily)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(base.AddDate(0, 0, 1)), "newest first")
	assert.True(t, got[1].Equal(base))
}
