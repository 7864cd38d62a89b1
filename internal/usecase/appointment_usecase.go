package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vet-calendar-api/internal/converter"
	"vet-calendar-api/internal/delivery/dto"
	"vet-calendar-api/internal/domain/entity"
	"vet-calendar-api/internal/domain/repository"
	"vet-calendar-api/internal/infrastructure/cache"
	"vet-calendar-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrStartTimeNotFuture  = errors.New("start time must be in the future")
	ErrEndTimeBeforeStart  = errors.New("end time must be after start time")
	ErrAppointmentOverlap  = errors.New("an appointment for this animal already exists during the specified time")
	ErrCancelWindowClosed  = errors.New("cannot cancel within 1 hour of start time")
	ErrInvalidDateRange    = errors.New("start date must be before end date")
	ErrNoVetAppointments   = errors.New("appointments for veterinarian not found")
)

// fallbackOwnerEmail receives cancellation notices when the appointment's
// animal record or its owner email is unavailable.
const fallbackOwnerEmail = "owner@example.com"

const cancelWindow = time.Hour

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetVetAppointments(ctx context.Context, vetID uuid.UUID, start, end time.Time) (*dto.VetAppointmentListResponse, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateAppointmentStatusRequest) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	animalRepo      repository.AnimalRepository
	animalCache     *cache.AnimalCache
	emailService    service.EmailService
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	animalRepo repository.AnimalRepository,
	animalCache *cache.AnimalCache,
	emailService service.EmailService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		animalRepo:      animalRepo,
		animalCache:     animalCache,
		emailService:    emailService,
		now:             time.Now,
	}
}

// CreateAppointment books a time window for an animal.
//
// Flow:
// 1. Validate the window: start strictly in the future, end after start
// 2. Verify the referenced animal exists
// 3. Reject windows overlapping an existing appointment for the animal
// 4. Insert; the DB exclusion constraint backstops the overlap check under
//    concurrent creations
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	now := u.now()
	if !req.StartTime.After(now) {
		return nil, ErrStartTimeNotFuture
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrEndTimeBeforeStart
	}

	if err := u.verifyAnimalExists(ctx, req.AnimalID); err != nil {
		return nil, err
	}

	// Overlap test is inclusive on both bounds:
	// existing.start <= new.end AND existing.end >= new.start
	overlapping, err := u.appointmentRepo.FindOverlapping(ctx, req.AnimalID, req.StartTime, req.EndTime)
	if err != nil {
		u.log.Warnf("Failed to check overlapping appointments for animal %s: %+v", req.AnimalID, err)
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, ErrAppointmentOverlap
	}

	status := entity.AppointmentStatus(req.Status)
	if status == "" {
		status = entity.AppointmentStatusScheduled
	}

	appointment := &entity.Appointment{
		ID:             uuid.New(),
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		AnimalID:       req.AnimalID,
		CustomerID:     req.CustomerID,
		VeterinarianID: req.VeterinarianID,
		Status:         status,
		Notes:          req.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrAppointmentConflict) {
			return nil, ErrAppointmentOverlap
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%s, animal=%s, vet=%s", appointment.ID, appointment.AnimalID, appointment.VeterinarianID)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// GetVetAppointments returns the veterinarian's appointments fully contained
// in [start, end]. An empty result set is reported as not found.
func (u *appointmentUsecase) GetVetAppointments(ctx context.Context, vetID uuid.UUID, start, end time.Time) (*dto.VetAppointmentListResponse, error) {
	if !start.Before(end) {
		return nil, ErrInvalidDateRange
	}

	appointments, err := u.appointmentRepo.FindByVetAndRange(ctx, vetID, start, end)
	if err != nil {
		u.log.Warnf("Failed to find appointments for vet %s: %+v", vetID, err)
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, ErrNoVetAppointments
	}

	return &dto.VetAppointmentListResponse{
		Appointments: converter.AppointmentsToVetResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateStatus changes an appointment's status. Cancellations are rejected
// within one hour of the start time; a successful cancellation notifies the
// animal's owner by email after the status change is persisted.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, req *dto.UpdateAppointmentStatusRequest) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	status := entity.AppointmentStatus(req.Status)

	if status == entity.AppointmentStatusCanceled && !appointment.StartTime.After(u.now().Add(cancelWindow)) {
		return ErrCancelWindowClosed
	}

	appointment.Status = status
	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s status: %+v", req.AppointmentID, err)
		return err
	}

	if status == entity.AppointmentStatusCanceled {
		u.notifyCancellation(appointment)
	}

	u.log.Infof("Appointment status updated: id=%s, status=%s", appointment.ID, status)
	return nil
}

func (u *appointmentUsecase) notifyCancellation(appointment *entity.Appointment) {
	recipient := fallbackOwnerEmail
	if appointment.Animal != nil && appointment.Animal.OwnerEmail != "" {
		recipient = appointment.Animal.OwnerEmail
	}

	subject := "Appointment Canceled"
	body := fmt.Sprintf("Your appointment scheduled for %s has been canceled.", appointment.StartTime.Format(time.RFC1123))
	u.emailService.Send(recipient, subject, body)
}

func (u *appointmentUsecase) verifyAnimalExists(ctx context.Context, animalID uuid.UUID) error {
	if animal := u.animalCache.Get(ctx, animalID); animal != nil {
		return nil
	}

	animal, err := u.animalRepo.FindByID(ctx, animalID)
	if err != nil {
		u.log.Warnf("Failed to find animal %s: %+v", animalID, err)
		return err
	}
	if animal == nil {
		return ErrAnimalNotFound
	}

	u.animalCache.Set(ctx, animal)
	return nil
}
