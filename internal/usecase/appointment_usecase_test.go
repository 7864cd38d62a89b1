package usecase

import (
	"context"
	"testing"
	"time"

	"vet-calendar-api/internal/delivery/dto"
	"vet-calendar-api/internal/domain/entity"
	"vet-calendar-api/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	recipient string
	subject   string
	body      string
}

type emailRecorder struct {
	sent []sentEmail
}

func (r *emailRecorder) Send(recipientEmail, subject, body string) {
	r.sent = append(r.sent, sentEmail{recipient: recipientEmail, subject: subject, body: body})
}

type appointmentFixture struct {
	usecase         *appointmentUsecase
	animalRepo      *memory.AnimalRepository
	appointmentRepo *memory.AppointmentRepository
	emails          *emailRecorder
	now             time.Time
	animal          *entity.Animal
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	t.Helper()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	animalRepo := memory.NewAnimalRepository()
	appointmentRepo := memory.NewAppointmentRepository(animalRepo)
	emails := &emailRecorder{}

	u := NewAppointmentUsecase(newTestLogger(), appointmentRepo, animalRepo, nil, emails).(*appointmentUsecase)
	u.now = func() time.Time { return now }

	animal := &entity.Animal{
		ID:         uuid.New(),
		Name:       "Dog",
		BirthDate:  now.AddDate(-3, 0, 0),
		OwnerID:    uuid.New(),
		OwnerName:  "Dog Owner",
		OwnerEmail: "dogowner@example.com",
	}
	require.NoError(t, animalRepo.Create(context.Background(), animal))

	return &appointmentFixture{
		usecase:         u,
		animalRepo:      animalRepo,
		appointmentRepo: appointmentRepo,
		emails:          emails,
		now:             now,
		animal:          animal,
	}
}

func (f *appointmentFixture) createRequest(start, end time.Time) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		StartTime:      start,
		EndTime:        end,
		AnimalID:       f.animal.ID,
		CustomerID:     f.animal.OwnerID,
		VeterinarianID: uuid.New(),
	}
}

func TestCreateAppointment_Succeeds(t *testing.T) {
	f := newAppointmentFixture(t)

	req := f.createRequest(f.now.Add(24*time.Hour), f.now.Add(25*time.Hour))
	req.Notes = "Annual checkup"

	created, err := f.usecase.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), created.Status)
	assert.Equal(t, "Annual checkup", created.Notes)
	assert.Empty(t, f.emails.sent, "creation must not notify")
}

func TestCreateAppointment_KeepsCallerSuppliedStatus(t *testing.T) {
	f := newAppointmentFixture(t)

	req := f.createRequest(f.now.Add(24*time.Hour), f.now.Add(25*time.Hour))
	req.Status = string(entity.AppointmentStatusCompleted)

	created, err := f.usecase.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCompleted), created.Status)
}

func TestCreateAppointment_AnimalNotFound(t *testing.T) {
	f := newAppointmentFixture(t)

	req := f.createRequest(f.now.Add(24*time.Hour), f.now.Add(25*time.Hour))
	req.AnimalID = uuid.New()

	_, err := f.usecase.CreateAppointment(context.Background(), req)
	assert.ErrorIs(t, err, ErrAnimalNotFound)
}

func TestCreateAppointment_RejectsPastStart(t *testing.T) {
	f := newAppointmentFixture(t)

	for _, start := range []time.Time{f.now.Add(-time.Hour), f.now} {
		_, err := f.usecase.CreateAppointment(context.Background(), f.createRequest(start, start.Add(time.Hour)))
		assert.ErrorIs(t, err, ErrStartTimeNotFuture)
	}
}

func TestCreateAppointment_RejectsEndNotAfterStart(t *testing.T) {
	f := newAppointmentFixture(t)

	start := f.now.Add(24 * time.Hour)
	for _, end := range []time.Time{start, start.Add(-time.Minute)} {
		_, err := f.usecase.CreateAppointment(context.Background(), f.createRequest(start, end))
		assert.ErrorIs(t, err, ErrEndTimeBeforeStart)
	}
}

func TestCreateAppointment_RejectsOverlappingWindow(t *testing.T) {
	f := newAppointmentFixture(t)

	start := f.now.Add(24 * time.Hour)
	_, err := f.usecase.CreateAppointment(context.Background(), f.createRequest(start, start.Add(time.Hour)))
	require.NoError(t, err)

	// Second window starts 30 minutes into the first.
	_, err = f.usecase.CreateAppointment(context.Background(),
		f.createRequest(start.Add(30*time.Minute), start.Add(90*time.Minute)))
	assert.ErrorIs(t, err, ErrAppointmentOverlap)
}

func TestCreateAppointment_OverlapBoundsAreInclusive(t *testing.T) {
	f := newAppointmentFixture(t)

	start := f.now.Add(24 * time.Hour)
	end := start.Add(time.Hour)
	_, err := f.usecase.CreateAppointment(context.Background(), f.createRequest(start, end))
	require.NoError(t, err)

	// A window that merely touches the existing end still overlaps.
	_, err = f.usecase.CreateAppointment(context.Background(), f.createRequest(end, end.Add(time.Hour)))
	assert.ErrorIs(t, err, ErrAppointmentOverlap)
}

func TestCreateAppointment_AllowsDisjointWindows(t *testing.T) {
	f := newAppointmentFixture(t)

	start := f.now.Add(24 * time.Hour)
	_, err := f.usecase.CreateAppointment(context.Background(), f.createRequest(start, start.Add(time.Hour)))
	require.NoError(t, err)

	_, err = f.usecase.CreateAppointment(context.Background(),
		f.createRequest(start.Add(2*time.Hour), start.Add(3*time.Hour)))
	assert.NoError(t, err)
}

func TestCreateAppointment_AllowsOverlapForDifferentAnimals(t *testing.T) {
	f := newAppointmentFixture(t)

	other := &entity.Animal{
		ID:         uuid.New(),
		Name:       "Cat",
		BirthDate:  f.now.AddDate(-2, 0, 0),
		OwnerID:    uuid.New(),
		OwnerName:  "Cat Owner",
		OwnerEmail: "catowner@example.com",
	}
	require.NoError(t, f.animalRepo.Create(context.Background(), other))

	start := f.now.Add(24 * time.Hour)
	_, err := f.usecase.CreateAppointment(context.Background(), f.createRequest(start, start.Add(time.Hour)))
	require.NoError(t, err)

	req := f.createRequest(start, start.Add(time.Hour))
	req.AnimalID = other.ID
	_, err = f.usecase.CreateAppointment(context.Background(), req)
	assert.NoError(t, err)
}

func TestGetAppointment_IncludesAnimal(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.usecase.CreateAppointment(context.Background(),
		f.createRequest(f.now.Add(24*time.Hour), f.now.Add(25*time.Hour)))
	require.NoError(t, err)

	got, err := f.usecase.GetAppointment(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Animal)
	assert.Equal(t, "Dog", got.Animal.Name)
}

func TestGetAppointment_NotFound(t *testing.T) {
	f := newAppointmentFixture(t)

	_, err := f.usecase.GetAppointment(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetVetAppointments_RejectsInvalidRange(t *testing.T) {
	f := newAppointmentFixture(t)

	start := f.now.Add(24 * time.Hour)
	for _, end := range []time.Time{start, start.Add(-time.Hour)} {
		_, err := f.usecase.GetVetAppointments(context.Background(), uuid.New(), start, end)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	}
}

func TestGetVetAppointments_EmptyResultIsNotFound(t *testing.T) {
	f := newAppointmentFixture(t)

	_, err := f.usecase.GetVetAppointments(context.Background(), uuid.New(),
		f.now, f.now.Add(7*24*time.Hour))
	assert.ErrorIs(t, err, ErrNoVetAppointments)
}

func TestGetVetAppointments_ReturnsFullyContainedOnly(t *testing.T) {
	f := newAppointmentFixture(t)
	vetID := uuid.New()

	contained := f.createRequest(f.now.Add(24*time.Hour), f.now.Add(25*time.Hour))
	contained.VeterinarianID = vetID
	_, err := f.usecase.CreateAppointment(context.Background(), contained)
	require.NoError(t, err)

	// Ends one hour past the range end, so merely overlapping, not contained.
	straddling := f.createRequest(f.now.Add(47*time.Hour), f.now.Add(49*time.Hour))
	straddling.VeterinarianID = vetID
	_, err = f.usecase.CreateAppointment(context.Background(), straddling)
	require.NoError(t, err)

	got, err := f.usecase.GetVetAppointments(context.Background(), vetID,
		f.now, f.now.Add(48*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 1, got.Total)
	assert.Equal(t, "Dog", got.Appointments[0].AnimalName)
	assert.Equal(t, "Dog Owner", got.Appointments[0].OwnerName)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), got.Appointments[0].Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	f := newAppointmentFixture(t)

	err := f.usecase.UpdateStatus(context.Background(), &dto.UpdateAppointmentStatusRequest{
		AppointmentID: uuid.New(),
		Status:        string(entity.AppointmentStatusCompleted),
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus_CancelWithinOneHourRejected(t *testing.T) {
	f := newAppointmentFixture(t)

	for _, lead := range []time.Duration{30 * time.Minute, time.Hour} {
		created, err := f.usecase.CreateAppointment(context.Background(),
			f.createRequest(f.now.Add(lead), f.now.Add(lead+time.Hour)))
		require.NoError(t, err)

		err = f.usecase.UpdateStatus(context.Background(), &dto.UpdateAppointmentStatusRequest{
			AppointmentID: created.ID,
			Status:        string(entity.AppointmentStatusCanceled),
		})
		assert.ErrorIs(t, err, ErrCancelWindowClosed)
		assert.Empty(t, f.emails.sent)

		require.NoError(t, f.appointmentRepo.Delete(context.Background(), created.ID))
	}
}

func TestUpdateStatus_CancelNotifiesOwnerOnce(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.usecase.CreateAppointment(context.Background(),
		f.createRequest(f.now.Add(2*time.Hour), f.now.Add(3*time.Hour)))
	require.NoError(t, err)

	err = f.usecase.UpdateStatus(context.Background(), &dto.UpdateAppointmentStatusRequest{
		AppointmentID: created.ID,
		Status:        string(entity.AppointmentStatusCanceled),
	})
	require.NoError(t, err)

	got, err := f.usecase.GetAppointment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCanceled), got.Status)

	require.Len(t, f.emails.sent, 1)
	assert.Equal(t, "dogowner@example.com", f.emails.sent[0].recipient)
	assert.Equal(t, "Appointment Canceled", f.emails.sent[0].subject)
	assert.Contains(t, f.emails.sent[0].body, created.StartTime.Format(time.RFC1123))
}

func TestUpdateStatus_CancelFallsBackWhenAnimalMissing(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.usecase.CreateAppointment(context.Background(),
		f.createRequest(f.now.Add(2*time.Hour), f.now.Add(3*time.Hour)))
	require.NoError(t, err)

	// The animal is deleted out from under the appointment.
	require.NoError(t, f.animalRepo.Delete(context.Background(), f.animal.ID))

	err = f.usecase.UpdateStatus(context.Background(), &dto.UpdateAppointmentStatusRequest{
		AppointmentID: created.ID,
		Status:        string(entity.AppointmentStatusCanceled),
	})
	require.NoError(t, err)

	require.Len(t, f.emails.sent, 1)
	assert.Equal(t, fallbackOwnerEmail, f.emails.sent[0].recipient)
}

func TestUpdateStatus_NonCancelDoesNotNotify(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.usecase.CreateAppointment(context.Background(),
		f.createRequest(f.now.Add(30*time.Minute), f.now.Add(90*time.Minute)))
	require.NoError(t, err)

	err = f.usecase.UpdateStatus(context.Background(), &dto.UpdateAppointmentStatusRequest{
		AppointmentID: created.ID,
		Status:        string(entity.AppointmentStatusCompleted),
	})
	require.NoError(t, err)
	assert.Empty(t, f.emails.sent)
}
