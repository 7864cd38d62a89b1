package usecase

import (
	"context"
	"errors"
	"time"

	"vet-calendar-api/internal/converter"
	"vet-calendar-api/internal/delivery/dto"
	"vet-calendar-api/internal/domain/entity"
	"vet-calendar-api/internal/domain/repository"
	"vet-calendar-api/internal/infrastructure/cache"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAnimalNotFound   = errors.New("animal not found")
	ErrBirthDateNotPast = errors.New("birth date must be in the past")
)

type AnimalUsecase interface {
	CreateAnimal(ctx context.Context, req *dto.CreateAnimalRequest) (*dto.AnimalResponse, error)
	GetAnimal(ctx context.Context, id uuid.UUID) (*dto.AnimalResponse, error)
	DeleteAnimal(ctx context.Context, id uuid.UUID) error
}

type animalUsecase struct {
	log        *logrus.Logger
	animalRepo repository.AnimalRepository
	cache      *cache.AnimalCache
	now        func() time.Time
}

func NewAnimalUsecase(
	log *logrus.Logger,
	animalRepo repository.AnimalRepository,
	animalCache *cache.AnimalCache,
) AnimalUsecase {
	return &animalUsecase{
		log:        log,
		animalRepo: animalRepo,
		cache:      animalCache,
		now:        time.Now,
	}
}

func (u *animalUsecase) CreateAnimal(ctx context.Context, req *dto.CreateAnimalRequest) (*dto.AnimalResponse, error) {
	if !req.BirthDate.Before(u.now()) {
		return nil, ErrBirthDateNotPast
	}

	animal := &entity.Animal{
		ID:         uuid.New(),
		Name:       req.Name,
		BirthDate:  req.BirthDate,
		OwnerID:    req.OwnerID,
		OwnerName:  req.OwnerName,
		OwnerEmail: req.OwnerEmail,
	}

	if err := u.animalRepo.Create(ctx, animal); err != nil {
		u.log.Warnf("Failed to create animal: %+v", err)
		return nil, err
	}

	u.log.Infof("Animal created: id=%s, name=%s", animal.ID, animal.Name)
	return converter.AnimalToResponse(animal), nil
}

func (u *animalUsecase) GetAnimal(ctx context.Context, id uuid.UUID) (*dto.AnimalResponse, error) {
	if animal := u.cache.Get(ctx, id); animal != nil {
		return converter.AnimalToResponse(animal), nil
	}

	animal, err := u.animalRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find animal %s: %+v", id, err)
		return nil, err
	}
	if animal == nil {
		return nil, ErrAnimalNotFound
	}

	u.cache.Set(ctx, animal)
	return converter.AnimalToResponse(animal), nil
}

// DeleteAnimal removes the animal record. Appointments referencing the
// animal are left in place; see the status-update path for how a missing
// animal is handled there.
func (u *animalUsecase) DeleteAnimal(ctx context.Context, id uuid.UUID) error {
	animal, err := u.animalRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find animal %s: %+v", id, err)
		return err
	}
	if animal == nil {
		return ErrAnimalNotFound
	}

	if err := u.animalRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete animal %s: %+v", id, err)
		return err
	}

	u.cache.Invalidate(ctx, id)
	u.log.Infof("Animal deleted: id=%s", id)
	return nil
}
