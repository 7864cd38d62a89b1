package dto_test

import (
	"strings"
	"testing"
	"time"

	"vet-calendar-api/internal/delivery/dto"
	"vet-calendar-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateAppointmentRequest() dto.CreateAppointmentRequest {
	return dto.CreateAppointmentRequest{
		StartTime:      time.Now().Add(24 * time.Hour),
		EndTime:        time.Now().Add(25 * time.Hour),
		AnimalID:       uuid.New(),
		CustomerID:     uuid.New(),
		VeterinarianID: uuid.New(),
	}
}

func TestCreateAppointmentRequest_Validation(t *testing.T) {
	v := validator.NewValidator()

	t.Run("valid without status and notes", func(t *testing.T) {
		req := validCreateAppointmentRequest()
		assert.NoError(t, v.Validate(&req))
	})

	t.Run("all enum statuses accepted", func(t *testing.T) {
		for _, status := range []string{"scheduled", "in_progress", "completed", "canceled", "no_show"} {
			req := validCreateAppointmentRequest()
			req.Status = status
			assert.NoError(t, v.Validate(&req), "status %s", status)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		req := validCreateAppointmentRequest()
		req.Status = "postponed"

		err := v.Validate(&req)
		require.Error(t, err)
		errors := v.FormatValidationErrors(err)
		assert.Contains(t, errors, "Status")
	})

	t.Run("missing identifiers named per field", func(t *testing.T) {
		req := validCreateAppointmentRequest()
		req.AnimalID = uuid.Nil
		req.CustomerID = uuid.Nil
		req.VeterinarianID = uuid.Nil

		err := v.Validate(&req)
		require.Error(t, err)
		errors := v.FormatValidationErrors(err)
		assert.Contains(t, errors, "AnimalID")
		assert.Contains(t, errors, "CustomerID")
		assert.Contains(t, errors, "VeterinarianID")
	})

	t.Run("notes over 500 characters rejected", func(t *testing.T) {
		req := validCreateAppointmentRequest()
		req.Notes = strings.Repeat("x", 501)

		err := v.Validate(&req)
		require.Error(t, err)
		errors := v.FormatValidationErrors(err)
		assert.Contains(t, errors, "Notes")
	})
}

func TestUpdateAppointmentStatusRequest_Validation(t *testing.T) {
	v := validator.NewValidator()

	t.Run("allowed statuses accepted", func(t *testing.T) {
		for _, status := range []string{"scheduled", "completed", "canceled"} {
			req := dto.UpdateAppointmentStatusRequest{AppointmentID: uuid.New(), Status: status}
			assert.NoError(t, v.Validate(&req), "status %s", status)
		}
	})

	t.Run("valid enum members outside the allowed set rejected", func(t *testing.T) {
		for _, status := range []string{"in_progress", "no_show"} {
			req := dto.UpdateAppointmentStatusRequest{AppointmentID: uuid.New(), Status: status}

			err := v.Validate(&req)
			require.Error(t, err, "status %s", status)
			errors := v.FormatValidationErrors(err)
			assert.Contains(t, errors["Status"], "must be one of")
		}
	})

	t.Run("missing appointment id rejected", func(t *testing.T) {
		req := dto.UpdateAppointmentStatusRequest{Status: "canceled"}

		err := v.Validate(&req)
		require.Error(t, err)
		errors := v.FormatValidationErrors(err)
		assert.Contains(t, errors, "AppointmentID")
	})
}

func TestCreateAnimalRequest_Validation(t *testing.T) {
	v := validator.NewValidator()

	valid := dto.CreateAnimalRequest{
		Name:       "Dog",
		BirthDate:  time.Now().AddDate(-2, 0, 0),
		OwnerID:    uuid.New(),
		OwnerName:  "Owner",
		OwnerEmail: "owner@example.com",
	}
	assert.NoError(t, v.Validate(&valid))

	cases := []struct {
		name   string
		mutate func(*dto.CreateAnimalRequest)
		field  string
	}{
		{"empty name", func(r *dto.CreateAnimalRequest) { r.Name = "" }, "Name"},
		{"name too long", func(r *dto.CreateAnimalRequest) { r.Name = strings.Repeat("a", 101) }, "Name"},
		{"missing owner id", func(r *dto.CreateAnimalRequest) { r.OwnerID = uuid.Nil }, "OwnerID"},
		{"empty owner name", func(r *dto.CreateAnimalRequest) { r.OwnerName = "" }, "OwnerName"},
		{"owner name too long", func(r *dto.CreateAnimalRequest) { r.OwnerName = strings.Repeat("a", 101) }, "OwnerName"},
		{"empty owner email", func(r *dto.CreateAnimalRequest) { r.OwnerEmail = "" }, "OwnerEmail"},
		{"malformed owner email", func(r *dto.CreateAnimalRequest) { r.OwnerEmail = "not-an-email" }, "OwnerEmail"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)

			err := v.Validate(&req)
			require.Error(t, err)
			errors := v.FormatValidationErrors(err)
			assert.Contains(t, errors, tc.field)
		})
	}
}
