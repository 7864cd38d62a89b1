// Package memory provides in-memory repository implementations used by
// tests and local development without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"vet-calendar-api/internal/domain/entity"
	domainRepo "vet-calendar-api/internal/domain/repository"

	"github.com/google/uuid"
)

type AnimalRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]entity.Animal
}

func NewAnimalRepository() *AnimalRepository {
	return &AnimalRepository{byID: make(map[uuid.UUID]entity.Animal)}
}

var _ domainRepo.AnimalRepository = (*AnimalRepository)(nil)

func (r *AnimalRepository) Create(ctx context.Context, animal *entity.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if animal.CreatedAt.IsZero() {
		animal.CreatedAt = now
	}
	animal.UpdatedAt = now
	r.byID[animal.ID] = *animal
	return nil
}

func (r *AnimalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	animal, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &animal, nil
}

func (r *AnimalRepository) FindAll(ctx context.Context) ([]entity.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	animals := make([]entity.Animal, 0, len(r.byID))
	for _, animal := range r.byID {
		animals = append(animals, animal)
	}
	return animals, nil
}

func (r *AnimalRepository) Update(ctx context.Context, animal *entity.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	animal.UpdatedAt = time.Now()
	r.byID[animal.ID] = *animal
	return nil
}

func (r *AnimalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}
