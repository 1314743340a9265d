package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/attendance"
	"github.com/YeharaMewan/rise-hr-backend/internal/handler/http/response"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/validator"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	GetMonthly(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark handles POST /attendance
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := validator.Struct(req); err != nil {
		response.HandleError(w, err)
		return
	}

	id, role := actorFromRequest(r)
	rec, err := h.attendanceService.Mark(r.Context(), attendance.Actor{ID: id, Role: role}, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked", rec)
}

// GetDay handles GET /attendance
func (h *attendanceHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date") // format: YYYY-MM-DD, default: today

	result, err := h.attendanceService.Day(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthly handles GET /attendance/monthly
func (h *attendanceHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	personID := r.URL.Query().Get("person_id")
	if personID == "" {
		// Default to the caller's own records.
		personID, _ = actorFromRequest(r)
	}

	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))

	result, err := h.attendanceService.Monthly(r.Context(), personID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
