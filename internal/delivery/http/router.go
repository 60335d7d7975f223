package http

import (
	"net/http"

	"clinic-appointment-system/internal/delivery/http/handler"
	"clinic-appointment-system/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	doctorHandler       *handler.DoctorHandler
	patientHandler      *handler.PatientHandler
	departmentHandler   *handler.DepartmentHandler
	availabilityHandler *handler.AvailabilityHandler
	appointmentHandler  *handler.AppointmentHandler
	authMiddleware      *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	departmentHandler *handler.DepartmentHandler,
	availabilityHandler *handler.AvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		doctorHandler:       doctorHandler,
		patientHandler:      patientHandler,
		departmentHandler:   departmentHandler,
		availabilityHandler: availabilityHandler,
		appointmentHandler:  appointmentHandler,
		authMiddleware:      authMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Department browsing (any authenticated role)
	departments := api.PathPrefix("/departments").Subrouter()
	departments.Use(r.authMiddleware.Authenticate)
	departments.HandleFunc("", r.departmentHandler.GetAll).Methods(http.MethodGet)
	departments.HandleFunc("/{id}", r.departmentHandler.GetByID).Methods(http.MethodGet)

	// Cancellation is shared between the owning patient and the treating
	// doctor; ownership is enforced in the usecase.
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.doctorHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Deactivate).Methods(http.MethodDelete)

	admin.HandleFunc("/patients", r.patientHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}", r.patientHandler.Deactivate).Methods(http.MethodDelete)

	admin.HandleFunc("/departments", r.departmentHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/departments", r.departmentHandler.GetAll).Methods(http.MethodGet)

	admin.HandleFunc("/appointments", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)

	// Doctor routes
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)

	doctor.HandleFunc("/availability", r.availabilityHandler.Publish).Methods(http.MethodPost)
	doctor.HandleFunc("/availability", r.availabilityHandler.GetMine).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments", r.appointmentHandler.GetDoctorAppointments).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/upcoming", r.appointmentHandler.GetUpcomingWeek).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPost)
	doctor.HandleFunc("/patients/{id}/history", r.appointmentHandler.GetPatientHistory).Methods(http.MethodGet)

	// Patient routes
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)

	patient.HandleFunc("/doctors", r.doctorHandler.Browse).Methods(http.MethodGet)
	patient.HandleFunc("/doctors/{id}/availability", r.availabilityHandler.GetForDoctor).Methods(http.MethodGet)
	patient.HandleFunc("/appointments", r.appointmentHandler.Book).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.appointmentHandler.GetMine).Methods(http.MethodGet)
	patient.HandleFunc("/treatments", r.appointmentHandler.GetTreatmentHistory).Methods(http.MethodGet)
	patient.HandleFunc("/profile", r.patientHandler.UpdateProfile).Methods(http.MethodPut)

	r.router.Use(middleware.CORS)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
