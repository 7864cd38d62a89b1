package repository

import (
	"context"
	"errors"
	"time"

	"vet-calendar-api/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAppointmentConflict is returned by Create when the database rejects an
// appointment whose time window overlaps an existing one for the same animal.
var ErrAppointmentConflict = errors.New("appointment time window conflicts with an existing appointment")

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindByVetAndRange(ctx context.Context, vetID uuid.UUID, start, end time.Time) ([]entity.Appointment, error)
	FindOverlapping(ctx context.Context, animalID uuid.UUID, start, end time.Time) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
