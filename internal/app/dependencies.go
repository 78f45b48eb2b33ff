package app

import (
	"database/sql"

	"github.com/Bhavesh-Anc/eventkaro/internal/config"
	"github.com/Bhavesh-Anc/eventkaro/internal/event_bus"
	"github.com/Bhavesh-Anc/eventkaro/internal/utils"
	"github.com/Bhavesh-Anc/eventkaro/pkg/budget"
	"github.com/Bhavesh-Anc/eventkaro/pkg/event"
	"github.com/Bhavesh-Anc/eventkaro/pkg/gallery"
	"github.com/Bhavesh-Anc/eventkaro/pkg/guest"
	"github.com/Bhavesh-Anc/eventkaro/pkg/payment"
	"github.com/Bhavesh-Anc/eventkaro/pkg/reminder"
	"github.com/Bhavesh-Anc/eventkaro/pkg/task"
	"github.com/Bhavesh-Anc/eventkaro/pkg/timeline"
	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
	"github.com/Bhavesh-Anc/eventkaro/pkg/vendors"
	"github.com/Bhavesh-Anc/eventkaro/pkg/wedding"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Clock utils.Clock

	UserService user.Service
	UserHandler *user.Handler

	WeddingService *wedding.Service
	WeddingHandler *wedding.Handler

	EventService *event.Service
	EventHandler *event.Handler

	GuestService *guest.Service
	GuestHandler *guest.Handler

	VendorService *vendors.Service
	VendorHandler *vendors.Handler

	PaymentService *payment.Service
	PaymentHandler *payment.Handler

	TaskService *task.Service
	TaskHandler *task.Handler

	BudgetService *budget.Service
	BudgetHandler *budget.Handler

	TimelineService *timeline.Service
	TimelineHandler *timeline.Handler

	ReminderService   *reminder.Service
	ReminderHandler   *reminder.Handler
	ReminderScheduler *reminder.Scheduler

	GalleryService *gallery.Service
	GalleryHandler *gallery.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.WeddingService = wedding.NewService(wedding.NewRepository(db))
	deps.WeddingHandler = wedding.NewHandler(deps.WeddingService)

	deps.EventService = event.NewService(event.NewRepository(db), deps.Bus)
	deps.EventHandler = event.NewHandler(deps.EventService)

	deps.GuestService = guest.NewService(guest.NewRepository(db))
	deps.GuestHandler = guest.NewHandler(deps.GuestService)

	deps.VendorService = vendors.NewService(vendors.NewRepository(db), deps.Clock)
	deps.VendorHandler = vendors.NewHandler(deps.VendorService)

	deps.PaymentService = payment.NewService(payment.NewRepository(db), deps.Bus, deps.Clock)
	deps.PaymentHandler = payment.NewHandler(deps.PaymentService)

	deps.TaskService = task.NewService(task.NewRepository(db), deps.Bus, deps.Clock)
	deps.TaskHandler = task.NewHandler(deps.TaskService)

	deps.BudgetService = budget.NewService(budget.NewRepository(db), deps.WeddingService)
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService)

	deps.TimelineService = timeline.NewService(deps.EventService, deps.TaskService, deps.PaymentService, deps.Clock)
	deps.TimelineHandler = timeline.NewHandler(deps.TimelineService)

	deps.ReminderService = reminder.NewService(reminder.NewRepository(db), deps.Clock)
	deps.ReminderHandler = reminder.NewHandler(deps.ReminderService)
	deps.ReminderService.SubscribeToBus(deps.Bus)
	if cfg.Reminders.Enabled {
		scheduler, err := reminder.NewScheduler(deps.ReminderService, cfg.Reminders.Schedule)
		if err != nil {
			return nil, err
		}
		deps.ReminderScheduler = scheduler
	}

	deps.GalleryService = gallery.NewService(gallery.NewRepository(db), deps.Clock)
	deps.GalleryHandler = gallery.NewHandler(deps.GalleryService)

	return deps, nil
}
