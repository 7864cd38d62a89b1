package repository

import (
	"context"
	"errors"

	"vet-calendar-api/internal/domain/entity"
	domainRepo "vet-calendar-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type animalRepository struct {
	db *gorm.DB
}

func NewAnimalRepository(db *gorm.DB) domainRepo.AnimalRepository {
	return &animalRepository{db: db}
}

func (r *animalRepository) Create(ctx context.Context, animal *entity.Animal) error {
	return r.db.WithContext(ctx).Create(animal).Error
}

func (r *animalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Animal, error) {
	var animal entity.Animal
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&animal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &animal, nil
}

func (r *animalRepository) FindAll(ctx context.Context) ([]entity.Animal, error) {
	var animals []entity.Animal
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&animals).Error
	if err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *animalRepository) Update(ctx context.Context, animal *entity.Animal) error {
	return r.db.WithContext(ctx).Save(animal).Error
}

func (r *animalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Animal{}).Error
}
