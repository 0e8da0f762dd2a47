package app

import (
	"github.com/inventra/inventra/internal/config"
	"github.com/inventra/inventra/internal/event_bus"
	"github.com/inventra/inventra/internal/rest"
	"github.com/inventra/inventra/internal/session"
	"github.com/inventra/inventra/internal/upstream"
	"github.com/inventra/inventra/internal/utils"
	"github.com/inventra/inventra/pkg/audit"
	"github.com/inventra/inventra/pkg/authn"
	"github.com/inventra/inventra/pkg/calendar"
	"github.com/inventra/inventra/pkg/dashboard"
	"github.com/inventra/inventra/pkg/equipment"
	"github.com/inventra/inventra/pkg/notification"
	"github.com/inventra/inventra/pkg/profile"
	"github.com/inventra/inventra/pkg/qr"
	"github.com/inventra/inventra/pkg/reservation"
	"github.com/inventra/inventra/pkg/supply"
	"github.com/inventra/inventra/pkg/task"
	"github.com/inventra/inventra/pkg/users"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	SessionStore  *session.Store
	UpstreamAPI   *upstream.Client
	EventBus      *event_bus.EventBus
	FailureWriter *rest.FailureWriter

	AuthnService authn.Service
	AuthnHandler *authn.Handler

	EquipmentService equipment.Service
	EquipmentHandler *equipment.Handler

	ReservationService reservation.Service
	ReservationHandler *reservation.Handler

	TaskService task.Service
	TaskHandler *task.Handler

	NotificationService notification.Service
	NotificationPoller  *notification.Poller
	NotificationHandler *notification.Handler

	SupplyService supply.Service
	SupplyHandler *supply.Handler

	UserService users.Service
	UserHandler *users.Handler

	AuditService audit.Service
	AuditHandler *audit.Handler

	ProfileService profile.Service
	ProfileHandler *profile.Handler

	DashboardService dashboard.Service
	DashboardHandler *dashboard.Handler

	CalendarAggregator *calendar.Aggregator
	CalendarHandler    *calendar.Handler

	QRBuilder *qr.Builder
	QRHandler *qr.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	store, err := session.NewStore(cfg.StateDir)
	if err != nil {
		return nil, err
	}
	deps.SessionStore = store
	deps.UpstreamAPI = upstream.NewClient(cfg.Upstream.BaseURL, store, cfg.Upstream.Timeout)
	deps.EventBus = event_bus.NewEventBus()
	deps.FailureWriter = &rest.FailureWriter{Sessions: store}
	deps.Clock = &utils.SystemClock{}

	deps.AuthnService = authn.NewService(deps.UpstreamAPI, store, deps.EventBus)
	deps.AuthnHandler = authn.NewHandler(deps.AuthnService, store, deps.FailureWriter)

	deps.EquipmentService = equipment.NewService(deps.UpstreamAPI)
	deps.EquipmentHandler = equipment.NewHandler(deps.EquipmentService, deps.FailureWriter)

	deps.ReservationService = reservation.NewService(deps.UpstreamAPI)
	deps.ReservationHandler = reservation.NewHandler(deps.ReservationService, deps.FailureWriter)

	deps.TaskService = task.NewService(deps.UpstreamAPI)
	deps.TaskHandler = task.NewHandler(deps.TaskService, deps.FailureWriter)

	deps.NotificationService = notification.NewService(deps.UpstreamAPI)
	deps.NotificationPoller = notification.NewPoller(deps.NotificationService, deps.EventBus, cfg.Notifications.PollInterval)
	deps.NotificationHandler = notification.NewHandler(deps.NotificationService, deps.NotificationPoller, deps.FailureWriter)

	deps.EventBus.Subscribe(event_bus.SessionStarted, func(e event_bus.Event) error {
		if change, ok := e.Data.(event_bus.SessionChange); ok {
			log.Infof("session started for %s (admin=%t)", change.Email, change.Admin)
		}
		return nil
	})
	deps.EventBus.Subscribe(event_bus.SessionEnded, func(event_bus.Event) error {
		log.Info("session ended, local state cleared")
		return nil
	})
	deps.EventBus.Subscribe(event_bus.NotificationsRefreshed, func(e event_bus.Event) error {
		if snap, ok := e.Data.(event_bus.NotificationsSnapshot); ok {
			log.Debugf("notification snapshot refreshed: %d items, stale=%t", snap.Count, snap.Stale)
		}
		return nil
	})

	deps.SupplyService = supply.NewService(deps.UpstreamAPI)
	deps.SupplyHandler = supply.NewHandler(deps.SupplyService, deps.FailureWriter)

	deps.UserService = users.NewService(deps.UpstreamAPI)
	deps.UserHandler = users.NewHandler(deps.UserService, deps.FailureWriter)

	deps.AuditService = audit.NewService(deps.UpstreamAPI)
	deps.AuditHandler = audit.NewHandler(deps.AuditService, deps.FailureWriter)

	deps.ProfileService = profile.NewService(deps.UpstreamAPI)
	deps.ProfileHandler = profile.NewHandler(deps.ProfileService, deps.FailureWriter)

	deps.DashboardService = dashboard.NewService(deps.UpstreamAPI)
	deps.DashboardHandler = dashboard.NewHandler(deps.DashboardService, deps.FailureWriter)

	deps.CalendarAggregator = calendar.NewAggregator(
		deps.ReservationService,
		deps.TaskService,
		deps.EquipmentService,
		deps.NotificationService,
		calendar.Options{
			DefaultDueTime: cfg.Calendar.DefaultDueTime,
			TaskDuration:   cfg.Calendar.TaskDuration,
		},
	)
	deps.CalendarHandler = calendar.NewHandler(deps.CalendarAggregator, deps.Clock)

	deps.QRBuilder = qr.NewBuilder(cfg.QR.ServiceURL, cfg.QR.LinkBase, cfg.QR.Size)
	deps.QRHandler = qr.NewHandler(deps.QRBuilder)

	return deps, nil
}
