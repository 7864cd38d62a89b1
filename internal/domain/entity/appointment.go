package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCanceled   AppointmentStatus = "canceled"
	AppointmentStatusNoShow     AppointmentStatus = "no_show"
)

// Appointment represents a scheduled visit for an animal with a veterinarian
type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	StartTime      time.Time         `gorm:"not null;index" json:"start_time"`
	EndTime        time.Time         `gorm:"not null" json:"end_time"`
	AnimalID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"animal_id"`
	CustomerID     uuid.UUID         `gorm:"type:uuid;not null" json:"customer_id"`
	VeterinarianID uuid.UUID         `gorm:"type:uuid;not null;index" json:"veterinarian_id"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	Notes          string            `gorm:"type:varchar(500)" json:"notes,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Animal *Animal `gorm:"foreignKey:AnimalID" json:"animal,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCanceled checks if the appointment is canceled
func (a *Appointment) IsCanceled() bool {
	return a.Status == AppointmentStatusCanceled
}

// Overlaps reports whether the appointment's time window overlaps
// [start, end]. Bounds are inclusive on both sides.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return !a.StartTime.After(end) && !a.EndTime.Before(start)
}
