package repository

import (
	"context"

	"vet-calendar-api/internal/domain/entity"

	"github.com/google/uuid"
)

type AnimalRepository interface {
	Create(ctx context.Context, animal *entity.Animal) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Animal, error)
	FindAll(ctx context.Context) ([]entity.Animal, error)
	Update(ctx context.Context, animal *entity.Animal) error
	Delete(ctx context.Context, id uuid.UUID) error
}
