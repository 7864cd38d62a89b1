package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"vet-calendar-api/internal/domain/entity"
	domainRepo "vet-calendar-api/internal/domain/repository"

	"github.com/google/uuid"
)

type AppointmentRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]entity.Appointment
	animals *AnimalRepository
}

// NewAppointmentRepository creates an in-memory appointment store. The animal
// repository is used to attach the related Animal on read paths, mirroring
// the Preload done by the postgres implementation. It may be nil.
func NewAppointmentRepository(animals *AnimalRepository) *AppointmentRepository {
	return &AppointmentRepository{
		byID:    make(map[uuid.UUID]entity.Appointment),
		animals: animals,
	}
}

var _ domainRepo.AppointmentRepository = (*AppointmentRepository)(nil)

func (r *AppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.AnimalID == appointment.AnimalID && existing.Overlaps(appointment.StartTime, appointment.EndTime) {
			return domainRepo.ErrAppointmentConflict
		}
	}

	now := time.Now()
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = now
	}
	appointment.UpdatedAt = now
	stored := *appointment
	stored.Animal = nil
	r.byID[appointment.ID] = stored
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointment, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	r.attachAnimal(ctx, &appointment)
	return &appointment, nil
}

func (r *AppointmentRepository) FindByVetAndRange(ctx context.Context, vetID uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]entity.Appointment, 0)
	for _, appointment := range r.byID {
		if appointment.VeterinarianID != vetID {
			continue
		}
		if appointment.StartTime.Before(start) || appointment.EndTime.After(end) {
			continue
		}
		r.attachAnimal(ctx, &appointment)
		appointments = append(appointments, appointment)
	}
	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].StartTime.Before(appointments[j].StartTime)
	})
	return appointments, nil
}

func (r *AppointmentRepository) FindOverlapping(ctx context.Context, animalID uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]entity.Appointment, 0)
	for _, appointment := range r.byID {
		if appointment.AnimalID == animalID && appointment.Overlaps(start, end) {
			appointments = append(appointments, appointment)
		}
	}
	return appointments, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointment.UpdatedAt = time.Now()
	stored := *appointment
	stored.Animal = nil
	r.byID[appointment.ID] = stored
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *AppointmentRepository) attachAnimal(ctx context.Context, appointment *entity.Appointment) {
	if r.animals == nil {
		return
	}
	animal, err := r.animals.FindByID(ctx, appointment.AnimalID)
	if err == nil && animal != nil {
		appointment.Animal = animal
	}
}
