package app

import (
	"github.com/gorilla/mux"
	"github.com/inventra/inventra/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Session
	r.HandleFunc("/api/login", deps.AuthnHandler.Login).Methods("POST")
	r.HandleFunc("/api/logout", deps.AuthnHandler.Logout).Methods("POST")
	r.HandleFunc("/api/theme", deps.AuthnHandler.GetTheme).Methods("GET")
	r.HandleFunc("/api/theme", deps.AuthnHandler.SetTheme).Methods("PUT")

	// Equipment
	r.HandleFunc("/api/equipment", deps.EquipmentHandler.List).Methods("GET")
	r.HandleFunc("/api/equipment", deps.EquipmentHandler.Create).Methods("POST")
	r.HandleFunc("/api/equipment/{id}", deps.EquipmentHandler.Get).Methods("GET")
	r.HandleFunc("/api/equipment/{id}", deps.EquipmentHandler.Update).Methods("PUT")
	r.HandleFunc("/api/equipment/{id}", deps.EquipmentHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/equipment/{id}/qr", deps.QRHandler.GetCode).Methods("GET")

	// Reservations
	r.HandleFunc("/api/reservations", deps.ReservationHandler.List).Methods("GET")
	r.HandleFunc("/api/reservations", deps.ReservationHandler.Create).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", deps.ReservationHandler.Get).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", deps.ReservationHandler.Delete).Methods("DELETE")

	// Tasks
	r.HandleFunc("/api/tasks", deps.TaskHandler.List).Methods("GET")
	r.HandleFunc("/api/tasks", deps.TaskHandler.Create).Methods("POST")
	r.HandleFunc("/api/tasks/{id}", deps.TaskHandler.Update).Methods("PUT")
	r.HandleFunc("/api/tasks/{id}/complete", deps.TaskHandler.Complete).Methods("PATCH")
	r.HandleFunc("/api/tasks/{id}", deps.TaskHandler.Delete).Methods("DELETE")

	// Notifications
	r.HandleFunc("/api/notifications/bell", deps.NotificationHandler.Bell).Methods("GET")
	r.HandleFunc("/api/notifications", deps.NotificationHandler.List).Methods("GET")

	// Supplies
	r.HandleFunc("/api/supplies", deps.SupplyHandler.List).Methods("GET")
	r.HandleFunc("/api/supplies", deps.SupplyHandler.Create).Methods("POST")
	r.HandleFunc("/api/supplies/{id}", deps.SupplyHandler.Update).Methods("PUT")
	r.HandleFunc("/api/supplies/{id}", deps.SupplyHandler.Delete).Methods("DELETE")

	// Users
	r.HandleFunc("/api/users", deps.UserHandler.List).Methods("GET")
	r.HandleFunc("/api/users", deps.UserHandler.Create).Methods("POST")
	r.HandleFunc("/api/users/{id}", deps.UserHandler.Get).Methods("GET")
	r.HandleFunc("/api/users/{id}", deps.UserHandler.Update).Methods("PUT")
	r.HandleFunc("/api/users/{id}", deps.UserHandler.Delete).Methods("DELETE")

	// Audit log
	r.HandleFunc("/api/audit", deps.AuditHandler.List).Methods("GET")

	// Profile
	r.HandleFunc("/api/profile", deps.ProfileHandler.Get).Methods("GET")
	r.HandleFunc("/api/profile", deps.ProfileHandler.Update).Methods("PUT")

	// Dashboard metrics
	r.HandleFunc("/api/dashboard", deps.DashboardHandler.Metrics).Methods("GET")

	// Calendar
	r.HandleFunc("/api/calendar/events", deps.CalendarHandler.GetEvents).Methods("GET")
}
