package converter

import (
	"vet-calendar-api/internal/delivery/dto"
	"vet-calendar-api/internal/domain/entity"
)

// AnimalToResponse converts an Animal entity to AnimalResponse DTO
func AnimalToResponse(animal *entity.Animal) *dto.AnimalResponse {
	if animal == nil {
		return nil
	}

	return &dto.AnimalResponse{
		ID:         animal.ID,
		Name:       animal.Name,
		BirthDate:  animal.BirthDate,
		OwnerID:    animal.OwnerID,
		OwnerName:  animal.OwnerName,
		OwnerEmail: animal.OwnerEmail,
		CreatedAt:  animal.CreatedAt,
		UpdatedAt:  animal.UpdatedAt,
	}
}
