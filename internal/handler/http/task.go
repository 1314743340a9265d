package http

import (
	"encoding/json"
	"net/http"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/task"
	"github.com/YeharaMewan/rise-hr-backend/internal/handler/http/response"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type TaskHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Allocate(w http.ResponseWriter, r *http.Request)
	Deallocate(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.Service
}

func NewTaskHandler(taskService task.Service) TaskHandler {
	return &taskHandlerImpl{taskService: taskService}
}

func taskActor(r *http.Request) task.Actor {
	id, role := actorFromRequest(r)
	return task.Actor{ID: id, Role: role}
}

// List handles GET /tasks
func (h *taskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.List(r.Context(), taskActor(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, tasks)
}

// Get handles GET /tasks/{id}
func (h *taskHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.taskService.Get(r.Context(), taskActor(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, t)
}

// Create handles POST /tasks
func (h *taskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req task.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := validator.Struct(req); err != nil {
		response.HandleError(w, err)
		return
	}

	t, err := h.taskService.Create(r.Context(), taskActor(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Task created", t)
}

// Update handles PUT /tasks/{id}
func (h *taskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req task.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := validator.Struct(req); err != nil {
		response.HandleError(w, err)
		return
	}

	t, err := h.taskService.Update(r.Context(), taskActor(r), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, t)
}

// Delete handles DELETE /tasks/{id}
func (h *taskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.Delete(r.Context(), taskActor(r), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task deleted", nil)
}

// Allocate handles POST /tasks/{id}/allocations
func (h *taskHandlerImpl) Allocate(w http.ResponseWriter, r *http.Request) {
	var req task.AllocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := validator.Struct(req); err != nil {
		response.HandleError(w, err)
		return
	}

	t, err := h.taskService.Allocate(r.Context(), taskActor(r), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, t)
}

// Deallocate handles DELETE /tasks/{id}/allocations/{labourId}
func (h *taskHandlerImpl) Deallocate(w http.ResponseWriter, r *http.Request) {
	t, err := h.taskService.Deallocate(r.Context(), taskActor(r), chi.URLParam(r, "id"), chi.URLParam(r, "labourId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, t)
}
