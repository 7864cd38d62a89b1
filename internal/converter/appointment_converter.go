package converter

import (
	"vet-calendar-api/internal/delivery/dto"
	"vet-calendar-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:             appointment.ID,
		StartTime:      appointment.StartTime,
		EndTime:        appointment.EndTime,
		AnimalID:       appointment.AnimalID,
		CustomerID:     appointment.CustomerID,
		VeterinarianID: appointment.VeterinarianID,
		Status:         string(appointment.Status),
		Notes:          appointment.Notes,
		CreatedAt:      appointment.CreatedAt,
		UpdatedAt:      appointment.UpdatedAt,
	}

	// Include animal info if loaded
	if appointment.Animal != nil {
		response.Animal = AnimalToResponse(appointment.Animal)
	}

	return response
}

// AppointmentToVetResponse projects an Appointment to the vet-facing summary shape
func AppointmentToVetResponse(appointment *entity.Appointment) dto.VetAppointmentResponse {
	response := dto.VetAppointmentResponse{
		StartTime: appointment.StartTime,
		EndTime:   appointment.EndTime,
		Status:    string(appointment.Status),
	}

	if appointment.Animal != nil {
		response.AnimalName = appointment.Animal.Name
		response.OwnerName = appointment.Animal.OwnerName
	}

	return response
}

// AppointmentsToVetResponses converts a slice of Appointment entities to vet summaries
func AppointmentsToVetResponses(appointments []entity.Appointment) []dto.VetAppointmentResponse {
	responses := make([]dto.VetAppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = AppointmentToVetResponse(&appointments[i])
	}
	return responses
}
