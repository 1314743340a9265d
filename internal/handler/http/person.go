package http

import (
	"encoding/json"
	"net/http"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/person"
	"github.com/YeharaMewan/rise-hr-backend/internal/handler/http/response"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type PersonHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type personHandlerImpl struct {
	personService person.Service
}

func NewPersonHandler(personService person.Service) PersonHandler {
	return &personHandlerImpl{personService: personService}
}

// List handles GET /people
func (h *personHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")

	people, err := h.personService.List(r.Context(), role)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, people)
}

// Create handles POST /people
func (h *personHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req person.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := validator.Struct(req); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.personService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Person created", created)
}

// Update handles PUT /people/{id}
func (h *personHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req person.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := validator.Struct(req); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.personService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Deactivate handles DELETE /people/{id}
func (h *personHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.personService.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Person deactivated", nil)
}
