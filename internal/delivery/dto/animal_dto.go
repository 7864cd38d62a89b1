package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAnimalRequest struct {
	Name       string    `json:"name" validate:"required,max=100"`
	BirthDate  time.Time `json:"birth_date" validate:"required"`
	OwnerID    uuid.UUID `json:"owner_id" validate:"required"`
	OwnerName  string    `json:"owner_name" validate:"required,max=100"`
	OwnerEmail string    `json:"owner_email" validate:"required,email"`
}

// Response DTOs

type AnimalResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	BirthDate  time.Time `json:"birth_date"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OwnerName  string    `json:"owner_name"`
	OwnerEmail string    `json:"owner_email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
