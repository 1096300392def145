package cmd

import (
	"context"
	"errors"
	"fmt"

	httpin "attendance/internal/adapters/in/http"
	"attendance/internal/adapters/out/events"
	"attendance/internal/adapters/out/invoicing"
	"attendance/internal/adapters/out/locationfeed"
	"attendance/internal/adapters/out/postgres"
	"attendance/internal/adapters/out/postgres/assignmentrepo"
	"attendance/internal/adapters/out/postgres/rotarepo"
	"attendance/internal/adapters/out/postgres/workerrepo"
	"attendance/internal/core/application/dispatch"
	"attendance/internal/core/application/usecases/commands"
	"attendance/internal/core/application/usecases/queries"
	"attendance/internal/core/domain/services"
	"attendance/internal/core/ports"
	"attendance/internal/jobs"
	"attendance/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// locationFeed is both ends of the worker location feed.
type locationFeed interface {
	ports.LocationProvider
	ports.LocationSink
}

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger

	feed      locationFeed
	closeFeed func() error
	invoices  ports.InvoiceService
	hub       *events.Hub
	publisher ports.EventPublisher
	monitors  *jobs.MonitorManager

	resolver services.ScheduleConflictResolver
}

func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, cfg.GeofenceHistoryLimit),
		logger:     logger,
		closeFeed:  func() error { return nil },
		resolver:   services.NewScheduleConflictResolver(),
	}

	switch cfg.LocationFeed {
	case LocationFeedRedis:
		feed, err := locationfeed.NewRedisFeed(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.LocationMaxAge, logger)
		if err != nil {
			return nil, fmt.Errorf("connecting location feed: %w", err)
		}
		c.feed = feed
		c.closeFeed = feed.Close
	default:
		c.feed = locationfeed.NewMemoryFeed(cfg.LocationMaxAge)
	}

	c.invoices = invoicing.NewClient(invoicing.Config{
		BaseURL:  cfg.InvoiceServiceURL,
		Timeout:  cfg.InvoiceTimeout,
		RetryMax: cfg.InvoiceRetryMax,
	}, logger)

	c.hub = events.NewHub(cfg.EventOrigins, logger)
	c.publisher = events.FanOut{c.hub, events.NewLogPublisher(logger)}

	c.monitors = jobs.NewMonitorManager(
		assignmentrepo.NewGormAssignmentRepository(gormDB, cfg.GeofenceHistoryLimit),
		c.feed,
		c.CreateRecordLocationSampleCommandHandler(),
		c.publisher,
		jobs.MonitorConfig{
			PollInterval:  cfg.GeofencePollInterval,
			MissThreshold: cfg.GeofenceMissThreshold,
		},
		logger,
	)

	return c, nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateApplyForJobCommandHandler() commands.ApplyForJobCommandHandler {
	return commands.NewApplyForJobCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAssignWorkerCommandHandler() commands.AssignWorkerCommandHandler {
	return commands.NewAssignWorkerCommandHandler(c.uow(), services.NewShiftAssigner(c.resolver), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCheckInCommandHandler() commands.CheckInCommandHandler {
	return commands.NewCheckInCommandHandler(c.uow(), services.NewCheckpointVerifier(), c.monitors, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCompleteAssignmentCommandHandler() commands.CompleteAssignmentCommandHandler {
	return commands.NewCompleteAssignmentCommandHandler(c.uow(), c.invoices, c.monitors, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateBookOffCommandHandler() commands.BookOffCommandHandler {
	return commands.NewBookOffCommandHandler(c.uow(), c.monitors, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAddToRotaCommandHandler() commands.AddToRotaCommandHandler {
	return commands.NewAddToRotaCommandHandler(rotarepo.NewGormRotaRepository(c.gormDB), workerrepo.NewGormWorkerRepository(c.gormDB))
}

func (c *CompositionRoot) CreateReportLocationCommandHandler() commands.ReportLocationCommandHandler {
	return commands.NewReportLocationCommandHandler(c.feed)
}

func (c *CompositionRoot) CreateRecordLocationSampleCommandHandler() commands.RecordLocationSampleCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordLocationSampleCommandHandler(f, c.publisher, c.cfg.GeofenceHistoryLimit, c.logger)
}

func (c *CompositionRoot) CreateFindAvailableWorkersQueryHandler() queries.FindAvailableWorkersQueryHandler {
	return queries.NewFindAvailableWorkersQueryHandler(c.gormDB, c.resolver)
}

func (c *CompositionRoot) CreateGetAssignmentQueryHandler() queries.GetAssignmentQueryHandler {
	return queries.NewGetAssignmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportTimesheetQueryHandler() queries.ExportTimesheetQueryHandler {
	return queries.NewExportTimesheetQueryHandler(c.CreateGetAssignmentQueryHandler())
}

// CreateCoordinator wires every handler behind the dispatch entry point.
func (c *CompositionRoot) CreateCoordinator() *dispatch.Coordinator {
	return dispatch.NewCoordinator(dispatch.Handlers{
		Apply:                c.CreateApplyForJobCommandHandler(),
		Assign:               c.CreateAssignWorkerCommandHandler(),
		CheckIn:              c.CreateCheckInCommandHandler(),
		Complete:             c.CreateCompleteAssignmentCommandHandler(),
		BookOff:              c.CreateBookOffCommandHandler(),
		AddToRota:            c.CreateAddToRotaCommandHandler(),
		ReportLocation:       c.CreateReportLocationCommandHandler(),
		FindAvailableWorkers: c.CreateFindAvailableWorkersQueryHandler(),
		GetAssignment:        c.CreateGetAssignmentQueryHandler(),
		ExportTimesheet:      c.CreateExportTimesheetQueryHandler(),
	})
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := httpin.NewServer(c.CreateCoordinator(), c.logger)
	return httpin.NewRouter(httpin.RouterConfig{
		LocationRatePerSecond: c.cfg.RateLimitRPS,
		LocationBurst:         c.cfg.RateLimitBurst,
		LogLevel:              logging.EchoLevel(c.cfg.LogLevel),
	}, server, c.hub, c.logger)
}

// ResumeTracking restarts the geofence monitors of every InProgress assignment.
func (c *CompositionRoot) ResumeTracking(ctx context.Context) error {
	return c.monitors.ResumeAll(ctx)
}

// Close stops every monitor, waiting for running ticks, then releases the
// event hub and the location feed.
func (c *CompositionRoot) Close(ctx context.Context) error {
	err := c.monitors.StopAll(ctx)
	c.hub.Close()
	return errors.Join(err, c.closeFeed())
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}
