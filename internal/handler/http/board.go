package http

import (
	"net/http"
	"time"

	"github.com/availboard/availboard-backend-go/internal/domain/board"
	"github.com/availboard/availboard-backend-go/internal/handler/http/middleware"
	"github.com/availboard/availboard-backend-go/internal/handler/http/response"
)

type BoardHandler interface {
	Events(w http.ResponseWriter, r *http.Request)
	TodaySnapshot(w http.ResponseWriter, r *http.Request)
	WeeklyGrid(w http.ResponseWriter, r *http.Request)
}

type boardHandlerImpl struct {
	boardService board.Service
}

func NewBoardHandler(boardService board.Service) BoardHandler {
	return &boardHandlerImpl{boardService: boardService}
}

func boardFilters(r *http.Request) board.Filters {
	return board.Filters{
		DepartmentIDs: parseIntCSV(queryParam(r, "department_ids")),
		Types: board.TypeFilter{
			IDs:   parseIntCSV(queryParam(r, "type_ids")),
			Codes: parseCodeCSV(queryParam(r, "type_codes")),
		},
	}
}

// Events returns the flat calendar feed for a date range.
func (h *boardHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	actorID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	start, okStart := parseTimeParam(queryParam(r, "start"))
	end, okEnd := parseTimeParam(queryParam(r, "end"))
	if !okStart || !okEnd {
		// Calendar frontends always send a visible range; default to the
		// current month when they do not.
		now := time.Now()
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, 0)
	}

	events, err := h.boardService.Events(r.Context(), actorID, start, end, boardFilters(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, events)
}

func (h *boardHandlerImpl) TodaySnapshot(w http.ResponseWriter, r *http.Request) {
	actorID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	groups, err := h.boardService.TodaySnapshot(r.Context(), actorID, boardFilters(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, groups)
}

func (h *boardHandlerImpl) WeeklyGrid(w http.ResponseWriter, r *http.Request) {
	actorID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var weekStart *time.Time
	if ws, ok := parseTimeParam(queryParam(r, "week_start")); ok {
		weekStart = &ws
	}

	grid, err := h.boardService.WeeklyGrid(r.Context(), actorID, weekStart, boardFilters(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, grid)
}
