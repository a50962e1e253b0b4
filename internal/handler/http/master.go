package http

import (
	"encoding/json"
	"net/http"

	"github.com/availboard/availboard-backend-go/internal/domain/availability"
	"github.com/availboard/availboard-backend-go/internal/domain/department"
	"github.com/availboard/availboard-backend-go/internal/handler/http/middleware"
	"github.com/availboard/availboard-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	AssignManager(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	departmentService department.Service
	typeService       availability.Service
}

func NewMasterHandler(departmentService department.Service, typeService availability.Service) MasterHandler {
	return &masterHandlerImpl{
		departmentService: departmentService,
		typeService:       typeService,
	}
}

func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentService.Departments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

func (h *masterHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.typeService.Types(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, types)
}

func (h *masterHandlerImpl) AssignManager(w http.ResponseWriter, r *http.Request) {
	actorID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req department.AssignManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.departmentService.AssignManager(r.Context(), actorID, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Manager assigned", nil)
}
