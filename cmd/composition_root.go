package cmd

import (
	"log/slog"
	"net/http"

	httpin "routing/internal/adapters/in/http"
	"routing/internal/adapters/out/locationservice"
	"routing/internal/adapters/out/postgres"
	"routing/internal/adapters/out/redis/actionstore"
	"routing/internal/core/application/usecases/commands"
	"routing/internal/core/application/usecases/queries"
	"routing/internal/core/domain/services"
	"routing/internal/core/ports"
	"routing/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot wires adapters behind ports. Every rule operation uses
// the store config.ActionStore selects: gormDB may be nil in redis mode and
// redisClient may be nil in postgres mode.
func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient redis.UniversalClient, logger *slog.Logger) CompositionRoot {
	var uowFactory ports.UnitOfWorkFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	if config.ActionStore == ActionStoreRedis {
		uowFactory = actionstore.NewUnitOfWorkFactory(redisClient)
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// ActionStore is the repository the resolution engine and rule listing read.
func (c *CompositionRoot) ActionStore() ports.ActionRepository {
	// Without Begin the repository runs outside any transaction; reads never write.
	return c.uowFactory.Create().ActionRepository()
}

// IntegrityCheckEnabled reports whether the store can hold conflicting rules.
// Redis keys one rule per pair, so only postgres tables need the check.
func (c *CompositionRoot) IntegrityCheckEnabled() bool {
	return c.config.ActionStore == ActionStorePostgres
}

func (c *CompositionRoot) CreateLocationGroupGateway() ports.LocationGroupGateway {
	return locationservice.NewHTTPGateway(&http.Client{}, c.config.LocationServiceTimeout)
}

func (c *CompositionRoot) CreateActionMatrix() *services.ActionMatrix {
	return services.NewActionMatrix(c.ActionStore(), c.CreateLocationGroupGateway(), c.logger)
}

func (c *CompositionRoot) CreateResolveActionQueryHandler() queries.ResolveActionQueryHandler {
	return queries.NewResolveActionQueryHandler(c.CreateActionMatrix())
}

func (c *CompositionRoot) CreateGetRouteActionsQueryHandler() queries.GetRouteActionsQueryHandler {
	return queries.NewGetRouteActionsQueryHandler(c.ActionStore())
}

func (c *CompositionRoot) CreateFindConflictingActionsQueryHandler() queries.FindConflictingActionsQueryHandler {
	return queries.NewFindConflictingActionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCreateActionCommandHandler() commands.CreateActionCommandHandler {
	return commands.NewCreateActionCommandHandler(c.actionUoWFactory())
}

func (c *CompositionRoot) CreateDeleteActionCommandHandler() commands.DeleteActionCommandHandler {
	return commands.NewDeleteActionCommandHandler(c.actionUoWFactory())
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	createActionHandler := c.CreateCreateActionCommandHandler()
	deleteActionHandler := c.CreateDeleteActionCommandHandler()

	return httpin.NewServer(
		c.CreateResolveActionQueryHandler(),
		c.CreateGetRouteActionsQueryHandler(),
		&createActionHandler,
		&deleteActionHandler,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateFindConflictingActionsQueryHandler(), c.config.IntegrityCheckSchedule, c.logger)
}

func (c *CompositionRoot) actionUoWFactory() commands.ActionUoWFactory {
	return FuncActionUoWFactory(func() commands.ActionUoW {
		return c.uowFactory.Create()
	})
}

type FuncActionUoWFactory func() commands.ActionUoW

func (f FuncActionUoWFactory) Create() commands.ActionUoW {
	return f()
}
