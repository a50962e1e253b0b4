package board

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
	"github.com/availboard/availboard-backend-go/internal/domain/board"
	"github.com/availboard/availboard-backend-go/internal/domain/employee"
	"github.com/availboard/availboard-backend-go/internal/domain/request"
	"github.com/availboard/availboard-backend-go/internal/domain/schedule"
)

type BoardServiceImpl struct {
	accessService access.Service
	requestRepo   request.Repository
	scheduleRepo  schedule.Repository
	employeeRepo  employee.Repository
}

func NewBoardService(
	accessService access.Service,
	requestRepo request.Repository,
	scheduleRepo schedule.Repository,
	employeeRepo employee.Repository,
) board.Service {
	return &BoardServiceImpl{
		accessService: accessService,
		requestRepo:   requestRepo,
		scheduleRepo:  scheduleRepo,
		employeeRepo:  employeeRepo,
	}
}

func (s *BoardServiceImpl) Events(ctx context.Context, actorID int64, start, end time.Time, f board.Filters) ([]board.Event, error) {
	res, err := s.accessService.ResolveScope(ctx, actorID, f.DepartmentIDs)
	if err != nil {
		return nil, err
	}
	if res.Scope.Empty() {
		return []board.Event{}, nil
	}

	// Blocks are keyed by date, so the range is truncated to whole days.
	blockFrom, blockTo := board.DateOf(start), board.DateOf(end)

	var (
		requests []request.Entry
		blocks   []schedule.Entry
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requests, err = s.requestRepo.ApprovedEntries(gCtx, start, end, res.Scope)
		return err
	})
	g.Go(func() error {
		var err error
		blocks, err = s.scheduleRepo.Entries(gCtx, blockFrom, blockTo, res.Scope)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildEvents(requests, blocks, f.Types), nil
}

func (s *BoardServiceImpl) TodaySnapshot(ctx context.Context, actorID int64, f board.Filters) ([]board.SnapshotGroup, error) {
	res, err := s.accessService.ResolveScope(ctx, actorID, f.DepartmentIDs)
	if err != nil {
		return nil, err
	}
	if res.Scope.Empty() {
		return []board.SnapshotGroup{}, nil
	}

	today := board.DateOf(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	var (
		requests []request.Entry
		blocks   []schedule.Entry
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requests, err = s.requestRepo.ApprovedEntries(gCtx, today, tomorrow, res.Scope)
		return err
	})
	g.Go(func() error {
		var err error
		blocks, err = s.scheduleRepo.Entries(gCtx, today, tomorrow, res.Scope)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	groups := buildSnapshot(requests, blocks, today, f.Types)
	if groups == nil {
		groups = []board.SnapshotGroup{}
	}
	return groups, nil
}

func (s *BoardServiceImpl) WeeklyGrid(ctx context.Context, actorID int64, weekStart *time.Time, f board.Filters) (board.WeeklyGrid, error) {
	ws := board.StartOfWeek(time.Now())
	if weekStart != nil {
		ws = board.DateOf(*weekStart)
	}
	weekEnd := ws.AddDate(0, 0, 7)

	res, err := s.accessService.ResolveScope(ctx, actorID, f.DepartmentIDs)
	if err != nil {
		return board.WeeklyGrid{}, err
	}
	if res.Scope.Empty() {
		// The week header still renders with nobody in it.
		return buildWeeklyGrid(ws, nil, nil, nil, f.Types), nil
	}

	var (
		members  []employee.Member
		requests []request.Entry
		blocks   []schedule.Entry
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		members, err = s.employeeRepo.ListInScope(gCtx, res.Scope)
		return err
	})
	g.Go(func() error {
		var err error
		requests, err = s.requestRepo.ApprovedEntries(gCtx, ws, weekEnd, res.Scope)
		return err
	})
	g.Go(func() error {
		var err error
		blocks, err = s.scheduleRepo.Entries(gCtx, ws, weekEnd, res.Scope)
		return err
	})
	if err := g.Wait(); err != nil {
		return board.WeeklyGrid{}, err
	}

	return buildWeeklyGrid(ws, members, requests, blocks, f.Types), nil
}
