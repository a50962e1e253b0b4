package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/availboard/availboard-backend-go/internal/domain/schedule"
	"github.com/availboard/availboard-backend-go/internal/handler/http/middleware"
	"github.com/availboard/availboard-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Day(w http.ResponseWriter, r *http.Request)
	ReplaceDay(w http.ResponseWriter, r *http.Request)
	DeleteDay(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

func employeeIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	return id, err == nil
}

// Day returns one employee's blocks for one date, for the edit dialog.
func (h *scheduleHandlerImpl) Day(w http.ResponseWriter, r *http.Request) {
	actorID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	employeeID, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	day, err := h.scheduleService.Day(r.Context(), actorID, employeeID, chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, day)
}

func (h *scheduleHandlerImpl) ReplaceDay(w http.ResponseWriter, r *http.Request) {
	actorID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	employeeID, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	var req schedule.ReplaceDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID
	req.Date = chi.URLParam(r, "date")

	if err := h.scheduleService.ReplaceDay(r.Context(), actorID, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Day saved", nil)
}

func (h *scheduleHandlerImpl) DeleteDay(w http.ResponseWriter, r *http.Request) {
	actorID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	employeeID, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	req := schedule.DayRequest{EmployeeID: employeeID, Date: chi.URLParam(r, "date")}
	if err := h.scheduleService.DeleteDay(r.Context(), actorID, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Day cleared", nil)
}
