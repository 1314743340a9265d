package http

import (
	"encoding/json"
	"net/http"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/allocation"
	"github.com/YeharaMewan/rise-hr-backend/internal/handler/http/response"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/validator"
)

type AllocationHandler interface {
	// GetLeadersStatus returns today's attendance-annotated leader list
	GetLeadersStatus(w http.ResponseWriter, r *http.Request)
	// SaveLabourSnapshot persists a day's labour allocation rollup
	SaveLabourSnapshot(w http.ResponseWriter, r *http.Request)
	// SaveTaskSnapshot persists a day's task allocation rollup
	SaveTaskSnapshot(w http.ResponseWriter, r *http.Request)
	// UpdateCompanyStats edits the external-company headcounts
	UpdateCompanyStats(w http.ResponseWriter, r *http.Request)
}

type allocationHandlerImpl struct {
	allocationService allocation.Service
}

func NewAllocationHandler(allocationService allocation.Service) AllocationHandler {
	return &allocationHandlerImpl{allocationService: allocationService}
}

// GetLeadersStatus handles GET /labour-allocation/leaders-status
func (h *allocationHandlerImpl) GetLeadersStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.allocationService.LeadersStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// SaveLabourSnapshot handles POST /labour-allocation/daily
func (h *allocationHandlerImpl) SaveLabourSnapshot(w http.ResponseWriter, r *http.Request) {
	var req allocation.SaveLabourSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := validator.Struct(req); err != nil {
		response.HandleError(w, err)
		return
	}

	id, _ := actorFromRequest(r)
	snap, err := h.allocationService.SaveLabourSnapshot(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Labour allocation saved", snap)
}

// SaveTaskSnapshot handles POST /task-allocations/daily
func (h *allocationHandlerImpl) SaveTaskSnapshot(w http.ResponseWriter, r *http.Request) {
	var req allocation.SaveTaskSnapshotRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}

	id, _ := actorFromRequest(r)
	snap, err := h.allocationService.SaveTaskSnapshot(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task allocation saved", snap)
}

// UpdateCompanyStats handles PUT /labour-allocation/company-stats
func (h *allocationHandlerImpl) UpdateCompanyStats(w http.ResponseWriter, r *http.Request) {
	var req allocation.UpdateCompanyStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := validator.Struct(req); err != nil {
		response.HandleError(w, err)
		return
	}

	id, _ := actorFromRequest(r)
	snap, err := h.allocationService.UpdateCompanyStats(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, snap)
}
