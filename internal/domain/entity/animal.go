package entity

import (
	"time"

	"github.com/google/uuid"
)

// Animal represents a patient animal and its owner's contact details
type Animal struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	BirthDate  time.Time `gorm:"not null" json:"birth_date"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	OwnerName  string    `gorm:"type:varchar(100);not null" json:"owner_name"`
	OwnerEmail string    `gorm:"type:varchar(255);not null" json:"owner_email"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Animal) TableName() string {
	return "animals"
}
