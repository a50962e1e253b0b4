package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/availboard/availboard-backend-go/internal/domain/department"
	"github.com/availboard/availboard-backend-go/internal/domain/employee"
	"github.com/availboard/availboard-backend-go/internal/handler/http/middleware"
	"github.com/availboard/availboard-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Search(w http.ResponseWriter, r *http.Request)

	ListOverrides(w http.ResponseWriter, r *http.Request)
	UpsertOverride(w http.ResponseWriter, r *http.Request)
	ClearOverride(w http.ResponseWriter, r *http.Request)

	ListGrants(w http.ResponseWriter, r *http.Request)
	Grant(w http.ResponseWriter, r *http.Request)
	Revoke(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService   employee.Service
	departmentService department.Service
}

func NewEmployeeHandler(employeeService employee.Service, departmentService department.Service) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService:   employeeService,
		departmentService: departmentService,
	}
}

func (h *employeeHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	actorID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.employeeService.Search(r.Context(), actorID, queryParam(r, "q"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *employeeHandlerImpl) ListOverrides(w http.ResponseWriter, r *http.Request) {
	actorID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	overrides, err := h.employeeService.Overrides(r.Context(), actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, overrides)
}

func (h *employeeHandlerImpl) UpsertOverride(w http.ResponseWriter, r *http.Request) {
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

	var req employee.UpsertOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	if err := h.employeeService.UpsertOverride(r.Context(), actorID, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Override saved", nil)
}

func (h *employeeHandlerImpl) ClearOverride(w http.ResponseWriter, r *http.Request) {
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

	if err := h.employeeService.ClearOverride(r.Context(), actorID, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Override cleared", nil)
}

func (h *employeeHandlerImpl) ListGrants(w http.ResponseWriter, r *http.Request) {
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

	grants, err := h.departmentService.Grants(r.Context(), actorID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, grants)
}

func (h *employeeHandlerImpl) Grant(w http.ResponseWriter, r *http.Request) {
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

	var req department.GrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	if err := h.departmentService.Grant(r.Context(), actorID, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Grant saved", nil)
}

func (h *employeeHandlerImpl) Revoke(w http.ResponseWriter, r *http.Request) {
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
	departmentID, err := strconv.ParseInt(chi.URLParam(r, "departmentID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid department id", nil)
		return
	}

	if err := h.departmentService.Revoke(r.Context(), actorID, employeeID, departmentID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Grant revoked", nil)
}
