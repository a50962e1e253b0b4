package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
	"github.com/availboard/availboard-backend-go/internal/domain/schedule"
)

type fakeAccess struct {
	allowed map[int64]bool // targetEmployeeID -> allowed
}

func (f *fakeAccess) ResolveScope(context.Context, int64, []int64) (access.Resolution, error) {
	return access.Resolution{}, nil
}

func (f *fakeAccess) CanEdit(_ context.Context, _, targetEmployeeID int64) (bool, error) {
	return f.allowed[targetEmployeeID], nil
}

type fakeScheduleRepo struct {
	schedule.Repository

	dayBlocks []schedule.Entry

	replacedWith []schedule.NewBlock
	replacedDate time.Time
	replacedBy   int64
	deletedDate  *time.Time
}

func (f *fakeScheduleRepo) DayBlocks(_ context.Context, _ int64, _ time.Time) ([]schedule.Entry, error) {
	return f.dayBlocks, nil
}

func (f *fakeScheduleRepo) ReplaceDay(_ context.Context, _ int64, date time.Time, blocks []schedule.NewBlock, updatedBy int64) error {
	f.replacedWith = blocks
	f.replacedDate = date
	f.replacedBy = updatedBy
	return nil
}

func (f *fakeScheduleRepo) DeleteDay(_ context.Context, _ int64, date time.Time) error {
	f.deletedDate = &date
	return nil
}

func newService(allowed bool) (schedule.Service, *fakeScheduleRepo) {
	repo := &fakeScheduleRepo{}
	svc := NewScheduleService(&fakeAccess{allowed: map[int64]bool{2: allowed}}, repo)
	return svc, repo
}

func strPtr(s string) *string { return &s }

func TestReplaceDayForbidden(t *testing.T) {
	svc, repo := newService(false)

	err := svc.ReplaceDay(context.Background(), 1, schedule.ReplaceDayRequest{
		EmployeeID: 2, Date: "2025-03-04",
		Blocks: []schedule.BlockInput{{TypeID: 3}},
	})
	assert.ErrorIs(t, err, access.ErrForbidden)
	assert.Nil(t, repo.replacedWith)
}

func TestReplaceDayInvalidDate(t *testing.T) {
	svc, _ := newService(true)

	err := svc.ReplaceDay(context.Background(), 1, schedule.ReplaceDayRequest{
		EmployeeID: 2, Date: "04.03.2025",
		Blocks: []schedule.BlockInput{{TypeID: 3}},
	})
	assert.ErrorIs(t, err, schedule.ErrInvalidDate)
}

func TestReplaceDayEmptyDeletes(t *testing.T) {
	svc, repo := newService(true)

	err := svc.ReplaceDay(context.Background(), 1, schedule.ReplaceDayRequest{
		EmployeeID: 2, Date: "2025-03-04", Blocks: nil,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.deletedDate)
	assert.Equal(t, "2025-03-04", repo.deletedDate.Format("2006-01-02"))
	assert.Nil(t, repo.replacedWith)
}

func TestReplaceDayParsesTimes(t *testing.T) {
	svc, repo := newService(true)

	err := svc.ReplaceDay(context.Background(), 1, schedule.ReplaceDayRequest{
		EmployeeID: 2, Date: "2025-03-04",
		Blocks: []schedule.BlockInput{
			{TypeID: 3, Start: strPtr("09:00"), End: strPtr("13:30")},
			// Unparseable times fall back to all-day.
			{TypeID: 4, Start: strPtr("9am"), End: strPtr("")},
		},
	})
	require.NoError(t, err)
	require.Len(t, repo.replacedWith, 2)
	assert.Equal(t, int64(1), repo.replacedBy)

	require.NotNil(t, repo.replacedWith[0].Start)
	assert.Equal(t, 9*60, repo.replacedWith[0].Start.Minutes())
	require.NotNil(t, repo.replacedWith[0].End)
	assert.Equal(t, 13*60+30, repo.replacedWith[0].End.Minutes())

	assert.Nil(t, repo.replacedWith[1].Start)
	assert.Nil(t, repo.replacedWith[1].End)
}

func TestReplaceDayRejectsInvertedRange(t *testing.T) {
	svc, repo := newService(true)

	err := svc.ReplaceDay(context.Background(), 1, schedule.ReplaceDayRequest{
		EmployeeID: 2, Date: "2025-03-04",
		Blocks: []schedule.BlockInput{{TypeID: 3, Start: strPtr("14:00"), End: strPtr("14:00")}},
	})
	assert.ErrorIs(t, err, schedule.ErrInvalidTimeRange)
	assert.Nil(t, repo.replacedWith)
}

func TestDayResponse(t *testing.T) {
	svc, repo := newService(true)
	start, err := schedule.ParseTimeOfDay("09:00")
	require.NoError(t, err)
	repo.dayBlocks = []schedule.Entry{
		{ID: 7, TypeID: 3, TypeCode: "CUSTOMER", TypeLabel: "Customer Visit", ColorHex: "#0d6efd", Start: &start},
	}

	resp, err := svc.Day(context.Background(), 1, 2, "2025-03-04")
	require.NoError(t, err)
	assert.True(t, resp.Exists)
	assert.Equal(t, "2025-03-04", resp.Date)
	require.Len(t, resp.Blocks, 1)
	assert.Equal(t, int64(7), resp.Blocks[0].ScheduleBlockID)
	require.NotNil(t, resp.Blocks[0].Start)
	assert.Equal(t, "09:00", *resp.Blocks[0].Start)
	assert.Nil(t, resp.Blocks[0].End)
}

func TestDayEmpty(t *testing.T) {
	svc, _ := newService(true)

	resp, err := svc.Day(context.Background(), 1, 2, "2025-03-04")
	require.NoError(t, err)
	assert.False(t, resp.Exists)
	assert.Empty(t, resp.Blocks)
}
