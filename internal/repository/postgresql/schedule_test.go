package postgresql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
	"github.com/availboard/availboard-backend-go/internal/domain/employee"
	"github.com/availboard/availboard-backend-go/internal/domain/schedule"
	"github.com/availboard/availboard-backend-go/internal/pkg/database"
)

// These tests need a schema-loaded database; set TEST_DATABASE_URL to run
// them.
func testDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func createTestEmployee(t *testing.T, db *database.DB, name string) int64 {
	t.Helper()
	repo := NewEmployeeRepository(db)
	id, err := repo.Upsert(context.Background(), employee.Employee{
		ADObjectID:     uuid.New(),
		SamAccountName: "test-" + uuid.NewString()[:8],
		DisplayName:    name,
		IsActive:       true,
	})
	require.NoError(t, err)
	return id
}

func mustParseTime(t *testing.T, s string) *schedule.TimeOfDay {
	t.Helper()
	v, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return &v
}

func TestReplaceDayRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	empID := createTestEmployee(t, db, "Roundtrip Tester")
	typeRepo := NewAvailabilityTypeRepository(db)
	officeType, err := typeRepo.GetByCode(ctx, "OFFICE")
	require.NoError(t, err)
	remoteType, err := typeRepo.GetByCode(ctx, "REMOTE")
	require.NoError(t, err)

	repo := NewScheduleRepository(db)
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	customer := "Acme Corp"
	err = repo.ReplaceDay(ctx, empID, day, []schedule.NewBlock{
		{TypeID: remoteType.ID, Start: mustParseTime(t, "13:00"), End: mustParseTime(t, "17:00")},
		{TypeID: officeType.ID, Start: mustParseTime(t, "09:00"), End: mustParseTime(t, "12:00"), CustomerName: &customer},
		{TypeID: officeType.ID}, // all-day
	}, empID)
	require.NoError(t, err)

	blocks, err := repo.DayBlocks(ctx, empID, day)
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	// All-day first, then by start time.
	assert.Nil(t, blocks[0].Start)
	assert.Equal(t, "09:00", blocks[1].Start.String())
	require.NotNil(t, blocks[1].CustomerName)
	assert.Equal(t, "Acme Corp", *blocks[1].CustomerName)
	assert.Equal(t, "13:00", blocks[2].Start.String())
	assert.Equal(t, "REMOTE", blocks[2].TypeCode)

	// Replacing overwrites, never appends.
	err = repo.ReplaceDay(ctx, empID, day, []schedule.NewBlock{
		{TypeID: officeType.ID},
	}, empID)
	require.NoError(t, err)

	blocks, err = repo.DayBlocks(ctx, empID, day)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.True(t, blocks[0].AllDay())

	require.NoError(t, repo.DeleteDay(ctx, empID, day))
	blocks, err = repo.DayBlocks(ctx, empID, day)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestEntriesScopedToSingleEmployee(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	empA := createTestEmployee(t, db, "Scoped A")
	empB := createTestEmployee(t, db, "Scoped B")

	typeRepo := NewAvailabilityTypeRepository(db)
	officeType, err := typeRepo.GetByCode(ctx, "OFFICE")
	require.NoError(t, err)

	repo := NewScheduleRepository(db)
	day := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.ReplaceDay(ctx, empA, day, []schedule.NewBlock{{TypeID: officeType.ID}}, empA))
	require.NoError(t, repo.ReplaceDay(ctx, empB, day, []schedule.NewBlock{{TypeID: officeType.ID}}, empB))
	t.Cleanup(func() {
		_ = repo.DeleteDay(ctx, empA, day)
		_ = repo.DeleteDay(ctx, empB, day)
	})

	entries, err := repo.Entries(ctx, day, day.AddDate(0, 0, 1), access.SingleEmployee(empA))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, empA, entries[0].EmployeeID)

	// An empty scope matches nobody.
	entries, err = repo.Entries(ctx, day, day.AddDate(0, 0, 1), access.Scope{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
