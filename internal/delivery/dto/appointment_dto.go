package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	StartTime      time.Time `json:"start_time" validate:"required"`
	EndTime        time.Time `json:"end_time" validate:"required"`
	AnimalID       uuid.UUID `json:"animal_id" validate:"required"`
	CustomerID     uuid.UUID `json:"customer_id" validate:"required"`
	VeterinarianID uuid.UUID `json:"veterinarian_id" validate:"required"`
	Status         string    `json:"status" validate:"omitempty,oneof=scheduled in_progress completed canceled no_show"`
	Notes          string    `json:"notes" validate:"omitempty,max=500"`
}

// UpdateAppointmentStatusRequest carries a status change. Only a subset of
// statuses may be set through this operation; in_progress and no_show are
// not reachable here.
type UpdateAppointmentStatusRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
	Status        string    `json:"status" validate:"required,oneof=scheduled completed canceled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             uuid.UUID       `json:"id"`
	StartTime      time.Time       `json:"start_time"`
	EndTime        time.Time       `json:"end_time"`
	AnimalID       uuid.UUID       `json:"animal_id"`
	CustomerID     uuid.UUID       `json:"customer_id"`
	VeterinarianID uuid.UUID       `json:"veterinarian_id"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes,omitempty"`
	Animal         *AnimalResponse `json:"animal,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// VetAppointmentResponse is the veterinarian-facing summary of an appointment.
type VetAppointmentResponse struct {
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	AnimalName string    `json:"animal_name"`
	OwnerName  string    `json:"owner_name"`
	Status     string    `json:"status"`
}

type VetAppointmentListResponse struct {
	Appointments []VetAppointmentResponse `json:"appointments"`
	Total        int                      `json:"total"`
}
