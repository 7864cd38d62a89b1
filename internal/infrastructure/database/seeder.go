package database

import (
	"time"

	"vet-calendar-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seed inserts demo animals and appointments when the tables are empty.
// Only called in the development environment.
func Seed(db *gorm.DB) error {
	var animalCount int64
	if err := db.Model(&entity.Animal{}).Count(&animalCount).Error; err != nil {
		return err
	}

	dog := entity.Animal{
		ID:         uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479"),
		Name:       "Dog",
		BirthDate:  time.Now().AddDate(-3, 0, 0),
		OwnerID:    uuid.New(),
		OwnerName:  "Dog Owner",
		OwnerEmail: "dogowner@example.com",
	}
	cat := entity.Animal{
		ID:         uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d477"),
		Name:       "Cat",
		BirthDate:  time.Now().AddDate(-2, 0, 0),
		OwnerID:    uuid.New(),
		OwnerName:  "Cat Owner",
		OwnerEmail: "catowner@example.com",
	}
	rabbit := entity.Animal{
		ID:         uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d476"),
		Name:       "Rabbit",
		BirthDate:  time.Now().AddDate(-1, 0, 0),
		OwnerID:    uuid.New(),
		OwnerName:  "Rabbit Owner",
		OwnerEmail: "rabbitowner@example.com",
	}

	if animalCount == 0 {
		if err := db.Create(&[]entity.Animal{dog, cat, rabbit}).Error; err != nil {
			return err
		}
		logrus.Info("Seeded animals")
	}

	var appointmentCount int64
	if err := db.Model(&entity.Appointment{}).Count(&appointmentCount).Error; err != nil {
		return err
	}

	if appointmentCount == 0 {
		vetID := uuid.New()
		appointments := []entity.Appointment{
			{
				ID:             uuid.New(),
				AnimalID:       dog.ID,
				CustomerID:     dog.OwnerID,
				VeterinarianID: vetID,
				StartTime:      time.Now().AddDate(0, 0, 1),
				EndTime:        time.Now().AddDate(0, 0, 1).Add(time.Hour),
				Status:         entity.AppointmentStatusScheduled,
				Notes:          "Vet appointment",
			},
			{
				ID:             uuid.New(),
				AnimalID:       cat.ID,
				CustomerID:     cat.OwnerID,
				VeterinarianID: vetID,
				StartTime:      time.Now().AddDate(0, 0, 2),
				EndTime:        time.Now().AddDate(0, 0, 2).Add(time.Hour),
				Status:         entity.AppointmentStatusScheduled,
				Notes:          "Follow-up check",
			},
		}
		if err := db.Create(&appointments).Error; err != nil {
			return err
		}
		logrus.Info("Seeded appointments")
	}

	return nil
}
