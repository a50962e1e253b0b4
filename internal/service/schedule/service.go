package schedule

import (
	"context"
	"time"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
	"github.com/availboard/availboard-backend-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	accessService access.Service
	scheduleRepo  schedule.Repository
}

func NewScheduleService(accessService access.Service, scheduleRepo schedule.Repository) schedule.Service {
	return &ScheduleServiceImpl{
		accessService: accessService,
		scheduleRepo:  scheduleRepo,
	}
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, schedule.ErrInvalidDate
	}
	return d, nil
}

func (s *ScheduleServiceImpl) authorize(ctx context.Context, actorID, employeeID int64) error {
	allowed, err := s.accessService.CanEdit(ctx, actorID, employeeID)
	if err != nil {
		return err
	}
	if !allowed {
		return access.ErrForbidden
	}
	return nil
}

func (s *ScheduleServiceImpl) Day(ctx context.Context, actorID, employeeID int64, date string) (schedule.DayResponse, error) {
	if err := s.authorize(ctx, actorID, employeeID); err != nil {
		return schedule.DayResponse{}, err
	}
	day, err := parseDate(date)
	if err != nil {
		return schedule.DayResponse{}, err
	}

	blocks, err := s.scheduleRepo.DayBlocks(ctx, employeeID, day)
	if err != nil {
		return schedule.DayResponse{}, err
	}

	resp := schedule.DayResponse{
		Exists:     len(blocks) > 0,
		EmployeeID: employeeID,
		Date:       day.Format("2006-01-02"),
		Blocks:     make([]schedule.BlockResponse, 0, len(blocks)),
	}
	for _, b := range blocks {
		var start, end *string
		if b.Start != nil {
			v := b.Start.String()
			start = &v
		}
		if b.End != nil {
			v := b.End.String()
			end = &v
		}
		resp.Blocks = append(resp.Blocks, schedule.BlockResponse{
			ScheduleBlockID: b.ID,
			TypeID:          b.TypeID,
			TypeCode:        b.TypeCode,
			TypeLabel:       b.TypeLabel,
			ColorHex:        b.ColorHex,
			Start:           start,
			End:             end,
			CustomerName:    b.CustomerName,
			Activity:        b.Activity,
			Note:            b.Note,
		})
	}
	return resp, nil
}

func (s *ScheduleServiceImpl) ReplaceDay(ctx context.Context, actorID int64, req schedule.ReplaceDayRequest) error {
	if err := s.authorize(ctx, actorID, req.EmployeeID); err != nil {
		return err
	}
	day, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	// Replacing with nothing and deleting the day are the same operation.
	if len(req.Blocks) == 0 {
		return s.scheduleRepo.DeleteDay(ctx, req.EmployeeID, day)
	}

	blocks := make([]schedule.NewBlock, 0, len(req.Blocks))
	for _, in := range req.Blocks {
		start := parseOptionalTime(in.Start)
		end := parseOptionalTime(in.End)
		if start != nil && end != nil && *end <= *start {
			return schedule.ErrInvalidTimeRange
		}
		blocks = append(blocks, schedule.NewBlock{
			TypeID:       in.TypeID,
			Start:        start,
			End:          end,
			CustomerName: in.CustomerName,
			Activity:     in.Activity,
			Note:         in.Note,
		})
	}
	return s.scheduleRepo.ReplaceDay(ctx, req.EmployeeID, day, blocks, actorID)
}

func (s *ScheduleServiceImpl) DeleteDay(ctx context.Context, actorID int64, req schedule.DayRequest) error {
	if err := s.authorize(ctx, actorID, req.EmployeeID); err != nil {
		return err
	}
	day, err := parseDate(req.Date)
	if err != nil {
		return err
	}
	return s.scheduleRepo.DeleteDay(ctx, req.EmployeeID, day)
}

// parseOptionalTime treats missing, blank or unparseable times as absent.
func parseOptionalTime(s *string) *schedule.TimeOfDay {
	if s == nil || *s == "" {
		return nil
	}
	t, err := schedule.ParseTimeOfDay(*s)
	if err != nil {
		return nil
	}
	return &t
}
