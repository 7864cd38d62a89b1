package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"vet-calendar-api/internal/delivery/dto"
	"vet-calendar-api/internal/usecase"
	"vet-calendar-api/pkg/response"
	"vet-calendar-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAnimalNotFound:
			response.NotFound(w, "Animal not found")
		case usecase.ErrStartTimeNotFuture:
			response.Error(w, http.StatusBadRequest, "Start time must be in the future", nil)
		case usecase.ErrEndTimeBeforeStart:
			response.Error(w, http.StatusBadRequest, "End time must be after start time", nil)
		case usecase.ErrAppointmentOverlap:
			response.Error(w, http.StatusBadRequest, "An appointment for this animal already exists during the specified time.", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) GetVetAppointments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vetID, err := uuid.Parse(vars["vetId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid veterinarian ID", nil)
		return
	}

	startDate, err := time.Parse(time.RFC3339, r.URL.Query().Get("start_date"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid start_date, use RFC3339 format", nil)
		return
	}
	endDate, err := time.Parse(time.RFC3339, r.URL.Query().Get("end_date"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid end_date, use RFC3339 format", nil)
		return
	}

	appointments, err := h.appointmentUsecase.GetVetAppointments(r.Context(), vetID, startDate, endDate)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, "Start date must be before end date", nil)
		case usecase.ErrNoVetAppointments:
			response.NotFound(w, "Appointments for veterinarian not found")
		default:
			response.InternalServerError(w, "Failed to get appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	err := h.appointmentUsecase.UpdateStatus(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrCancelWindowClosed:
			response.Error(w, http.StatusBadRequest, "Cannot cancel within 1 hour of start time.", nil)
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", true)
}
