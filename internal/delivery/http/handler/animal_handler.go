package handler

import (
	"encoding/json"
	"net/http"

	"vet-calendar-api/internal/delivery/dto"
	"vet-calendar-api/internal/usecase"
	"vet-calendar-api/pkg/response"
	"vet-calendar-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AnimalHandler struct {
	animalUsecase usecase.AnimalUsecase
	validator     *validator.CustomValidator
}

func NewAnimalHandler(animalUsecase usecase.AnimalUsecase, validator *validator.CustomValidator) *AnimalHandler {
	return &AnimalHandler{
		animalUsecase: animalUsecase,
		validator:     validator,
	}
}

func (h *AnimalHandler) CreateAnimal(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	animal, err := h.animalUsecase.CreateAnimal(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrBirthDateNotPast:
			response.Error(w, http.StatusBadRequest, "Birth date must be in the past", nil)
		default:
			response.InternalServerError(w, "Failed to create animal")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Animal created successfully", animal)
}

func (h *AnimalHandler) GetAnimal(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	animalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid animal ID", nil)
		return
	}

	animal, err := h.animalUsecase.GetAnimal(r.Context(), animalID)
	if err != nil {
		if err == usecase.ErrAnimalNotFound {
			response.NotFound(w, "Animal not found")
			return
		}
		response.InternalServerError(w, "Failed to get animal")
		return
	}

	response.Success(w, http.StatusOK, "Animal retrieved successfully", animal)
}

func (h *AnimalHandler) DeleteAnimal(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	animalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid animal ID", nil)
		return
	}

	err = h.animalUsecase.DeleteAnimal(r.Context(), animalID)
	if err != nil {
		if err == usecase.ErrAnimalNotFound {
			response.NotFound(w, "Animal not found")
			return
		}
		response.InternalServerError(w, "Failed to delete animal")
		return
	}

	response.Success(w, http.StatusOK, "Animal deleted successfully", nil)
}
