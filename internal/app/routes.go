package app

import (
	"github.com/Bhavesh-Anc/eventkaro/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// User management
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/user/name-availability", deps.UserHandler.IsUsernameAvailable).Methods("GET").Queries("username", "{username}")
	r.HandleFunc("/api/user/{userUid}", deps.UserHandler.DeleteUser).Methods("DELETE")

	// Weddings
	r.HandleFunc("/api/wedding", deps.WeddingHandler.CreateWedding).Methods("POST")
	r.HandleFunc("/api/wedding", deps.WeddingHandler.ListWeddings).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}", deps.WeddingHandler.GetWedding).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}", deps.WeddingHandler.UpdateWedding).Methods("PUT")
	r.HandleFunc("/api/wedding/{weddingId}", deps.WeddingHandler.DeleteWedding).Methods("DELETE")

	// Sub-events
	r.HandleFunc("/api/wedding/{weddingId}/event", deps.EventHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/wedding/{weddingId}/event/batch", deps.EventHandler.CreateEvents).Methods("POST")
	r.HandleFunc("/api/wedding/{weddingId}/event", deps.EventHandler.GetEvents).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}/event/{eventId}", deps.EventHandler.GetEvent).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}/event/{eventId}", deps.EventHandler.UpdateEvent).Methods("PUT")
	r.HandleFunc("/api/wedding/{weddingId}/event/{eventId}", deps.EventHandler.DeleteEvent).Methods("DELETE")

	// Guests
	r.HandleFunc("/api/wedding/{weddingId}/guest", deps.GuestHandler.CreateGuest).Methods("POST")
	r.HandleFunc("/api/wedding/{weddingId}/guest", deps.GuestHandler.GetGuests).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}/guest/summary", deps.GuestHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}/guest/{guestId}", deps.GuestHandler.UpdateGuest).Methods("PUT")
	r.HandleFunc("/api/wedding/{weddingId}/guest/{guestId}/rsvp", deps.GuestHandler.SetRSVP).Methods("PATCH")
	r.HandleFunc("/api/wedding/{weddingId}/guest/{guestId}", deps.GuestHandler.DeleteGuest).Methods("DELETE")

	// Vendor marketplace
	r.HandleFunc("/api/vendor", deps.VendorHandler.CreateVendor).Methods("POST")
	r.HandleFunc("/api/vendor", deps.VendorHandler.FindVendors).Methods("GET")
	r.HandleFunc("/api/vendor/{vendorId}", deps.VendorHandler.GetVendor).Methods("GET")
	r.HandleFunc("/api/vendor/{vendorId}", deps.VendorHandler.UpdateVendor).Methods("PUT")
	r.HandleFunc("/api/vendor/{vendorId}", deps.VendorHandler.DeleteVendor).Methods("DELETE")
	r.HandleFunc("/api/vendor/{vendorId}/review", deps.VendorHandler.CreateReview).Methods("POST")
	r.HandleFunc("/api/vendor/{vendorId}/review", deps.VendorHandler.GetReviews).Methods("GET")

	// Vendor bookings
	r.HandleFunc("/api/wedding/{weddingId}/booking", deps.VendorHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/wedding/{weddingId}/booking", deps.VendorHandler.GetBookings).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}/booking/{bookingId}", deps.VendorHandler.UpdateBooking).Methods("PUT")
	r.HandleFunc("/api/wedding/{weddingId}/booking/{bookingId}", deps.VendorHandler.DeleteBooking).Methods("DELETE")

	// Payment installments
	r.HandleFunc("/api/wedding/{weddingId}/installment", deps.PaymentHandler.CreateInstallment).Methods("POST")
	r.HandleFunc("/api/wedding/{weddingId}/installment", deps.PaymentHandler.GetInstallments).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}/installment/{installmentId}", deps.PaymentHandler.GetInstallment).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}/installment/{installmentId}", deps.PaymentHandler.UpdateInstallment).Methods("PUT")
	r.HandleFunc("/api/wedding/{weddingId}/installment/{installmentId}/paid", deps.PaymentHandler.MarkPaid).Methods("PATCH")
	r.HandleFunc("/api/wedding/{weddingId}/installment/{installmentId}", deps.PaymentHandler.DeleteInstallment).Methods("DELETE")

	// Tasks
	r.HandleFunc("/api/wedding/{weddingId}/task", deps.TaskHandler.CreateTask).Methods("POST")
	r.HandleFunc("/api/wedding/{weddingId}/task", deps.TaskHandler.GetTasks).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}/task/{taskId}", deps.TaskHandler.GetTask).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}/task/{taskId}", deps.TaskHandler.UpdateTask).Methods("PUT")
	r.HandleFunc("/api/wedding/{weddingId}/task/{taskId}/toggle", deps.TaskHandler.ToggleComplete).Methods("PATCH")
	r.HandleFunc("/api/wedding/{weddingId}/task/{taskId}", deps.TaskHandler.DeleteTask).Methods("DELETE")

	// Budget
	r.HandleFunc("/api/wedding/{weddingId}/budget", deps.BudgetHandler.CreateCategory).Methods("POST")
	r.HandleFunc("/api/wedding/{weddingId}/budget", deps.BudgetHandler.GetCategories).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}/budget/summary", deps.BudgetHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}/budget/{categoryId}", deps.BudgetHandler.UpdateCategory).Methods("PUT")
	r.HandleFunc("/api/wedding/{weddingId}/budget/{categoryId}", deps.BudgetHandler.DeleteCategory).Methods("DELETE")

	// Unified timeline
	r.HandleFunc("/api/wedding/{weddingId}/timeline", deps.TimelineHandler.GetTimeline).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}/timeline/run-sheet.ics", deps.TimelineHandler.ExportRunSheet).Methods("GET")

	// Reminders
	r.HandleFunc("/api/wedding/{weddingId}/reminder", deps.ReminderHandler.CreateReminder).Methods("POST")
	r.HandleFunc("/api/wedding/{weddingId}/reminder", deps.ReminderHandler.GetReminders).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}/reminder/{reminderId}", deps.ReminderHandler.DeleteReminder).Methods("DELETE")

	// Gallery
	r.HandleFunc("/api/wedding/{weddingId}/photo", deps.GalleryHandler.CreatePhoto).Methods("POST")
	r.HandleFunc("/api/wedding/{weddingId}/photo", deps.GalleryHandler.GetPhotos).Methods("GET")
	r.HandleFunc("/api/wedding/{weddingId}/photo/{photoId}", deps.GalleryHandler.UpdatePhoto).Methods("PUT")
	r.HandleFunc("/api/wedding/{weddingId}/photo/{photoId}", deps.GalleryHandler.DeletePhoto).Methods("DELETE")
}
