package http

import (
	"net/http"

	"vet-calendar-api/internal/delivery/http/handler"
	"vet-calendar-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Router struct {
	router             *mux.Router
	animalHandler      *handler.AnimalHandler
	appointmentHandler *handler.AppointmentHandler
	apiKeyMiddleware   *middleware.APIKeyMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	db                 *gorm.DB
}

func NewRouter(
	animalHandler *handler.AnimalHandler,
	appointmentHandler *handler.AppointmentHandler,
	apiKeyMiddleware *middleware.APIKeyMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	db *gorm.DB,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		animalHandler:      animalHandler,
		appointmentHandler: appointmentHandler,
		apiKeyMiddleware:   apiKeyMiddleware,
		corsMiddleware:     corsMiddleware,
		db:                 db,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check (public)
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Protected routes (API key)
	protected := api.NewRoute().Subrouter()
	protected.Use(r.apiKeyMiddleware.Authenticate)

	// Animal management
	protected.HandleFunc("/animals", r.animalHandler.CreateAnimal).Methods(http.MethodPost)
	protected.HandleFunc("/animals/{id}", r.animalHandler.GetAnimal).Methods(http.MethodGet)
	protected.HandleFunc("/animals/{id}", r.animalHandler.DeleteAnimal).Methods(http.MethodDelete)

	// Appointment management
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/vet/{vetId}", r.appointmentHandler.GetVetAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.db != nil {
		sqlDB, err := r.db.DB()
		if err != nil || sqlDB.PingContext(req.Context()) != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unavailable"}`))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
