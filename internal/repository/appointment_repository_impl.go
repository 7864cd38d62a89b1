package repository

import (
	"context"
	"errors"
	"time"

	"vet-calendar-api/internal/domain/entity"
	domainRepo "vet-calendar-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error code raised by the exclusion constraint on appointment
// time windows (see db/migrations).
const pgExclusionViolation = "23P01"

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	err := r.db.WithContext(ctx).Create(appointment).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domainRepo.ErrAppointmentConflict
		}
		return err
	}
	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Preload("Animal").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindByVetAndRange returns appointments for the veterinarian whose time
// window is fully contained in [start, end].
func (r *appointmentRepository) FindByVetAndRange(ctx context.Context, vetID uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).Preload("Animal").
		Where("veterinarian_id = ? AND start_time >= ? AND end_time <= ?", vetID, start, end).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindOverlapping returns the animal's appointments whose time window
// overlaps [start, end], bounds inclusive.
func (r *appointmentRepository) FindOverlapping(ctx context.Context, animalID uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("animal_id = ? AND start_time <= ? AND end_time >= ?", animalID, end, start).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{}).Error
}
