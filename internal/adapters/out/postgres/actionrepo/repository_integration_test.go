package actionrepo_test

import (
	"context"
	"testing"
	"time"

	"routing/internal/adapters/out/postgres/actionrepo"
	"routing/internal/core/domain/model/action"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ActionRepositoryIntegrationTestSuite verifies the gorm repository against a
// real PostgreSQL instance.
type ActionRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *actionrepo.GormActionRepository
}

func (suite *ActionRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&actionrepo.ActionDTO{}))
	suite.repository = actionrepo.NewGormActionRepository(db)
}

func (suite *ActionRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE actions").Error)
	// Restores unique indexes dropped by a previous test.
	suite.Require().NoError(suite.db.AutoMigrate(&actionrepo.ActionDTO{}))
}

func (suite *ActionRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ActionRepositoryIntegrationTestSuite) TestAdd_ValidAction_Success() {
	ctx := context.Background()
	a := suite.newGroupAction("R1", "ZoneA", "STORE")

	suite.Require().NoError(suite.repository.Add(ctx, a))

	suite.assertActionCount(1)
}

func (suite *ActionRepositoryIntegrationTestSuite) TestAdd_UnconstructedAction_Rejected() {
	err := suite.repository.Add(context.Background(), &action.Action{})

	suite.Require().ErrorIs(err, action.ErrActionIsNotConstructed)
	suite.assertActionCount(0)
}

func (suite *ActionRepositoryIntegrationTestSuite) TestGet_RoundTripsBothTargetKinds() {
	ctx := context.Background()
	byLocation := suite.newLocationAction("R1", "L-01", "PICK")
	byGroup := suite.newGroupAction("R1", "ZoneA", "STORE")
	suite.Require().NoError(suite.repository.Add(ctx, byLocation))
	suite.Require().NoError(suite.repository.Add(ctx, byGroup))

	got, err := suite.repository.Get(ctx, byLocation.ID())
	suite.Require().NoError(err)
	suite.True(byLocation.IsEqual(got))
	key, ok := got.Target().LocationKey()
	suite.True(ok)
	suite.Equal("L-01", key.String())
	suite.Equal("PICK", got.ProgramKey())
	suite.Equal("MOVE", got.ActionType())
	suite.Equal("R1", got.Route().ID())

	got, err = suite.repository.Get(ctx, byGroup.ID())
	suite.Require().NoError(err)
	name, ok := got.Target().LocationGroupName()
	suite.True(ok)
	suite.Equal("ZoneA", name)
}

func (suite *ActionRepositoryIntegrationTestSuite) TestGet_NonExistentAction_ReturnsNotFoundError() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(got)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ActionRepositoryIntegrationTestSuite) TestFindByRouteAndLocationKey() {
	ctx := context.Background()
	want := suite.newLocationAction("R1", "L-01", "PICK")
	otherRoute := suite.newLocationAction("R2", "L-01", "OTHER")
	suite.Require().NoError(suite.repository.Add(ctx, want))
	suite.Require().NoError(suite.repository.Add(ctx, otherRoute))

	got, err := suite.repository.FindByRouteAndLocationKey(ctx, suite.route("R1"), kernel.MustNewCoordinate("L-01"))
	suite.Require().NoError(err)
	suite.True(want.IsEqual(got))

	got, err = suite.repository.FindByRouteAndLocationKey(ctx, suite.route("R1"), kernel.MustNewCoordinate("L-02"))
	suite.Require().NoError(err)
	suite.Nil(got)
}

func (suite *ActionRepositoryIntegrationTestSuite) TestFindByRouteAndLocationGroupName() {
	ctx := context.Background()
	want := suite.newGroupAction("R1", "ZoneRoot", "STORE")
	suite.Require().NoError(suite.repository.Add(ctx, want))

	got, err := suite.repository.FindByRouteAndLocationGroupName(ctx, suite.route("R1"), "ZoneRoot")
	suite.Require().NoError(err)
	suite.True(want.IsEqual(got))

	// A group rule is never found through a location lookup with the same key.
	got, err = suite.repository.FindByRouteAndLocationKey(ctx, suite.route("R1"), kernel.MustNewCoordinate("ZoneRoot"))
	suite.Require().NoError(err)
	suite.Nil(got)

	got, err = suite.repository.FindByRouteAndLocationGroupName(ctx, suite.route("R2"), "ZoneRoot")
	suite.Require().NoError(err)
	suite.Nil(got)
}

func (suite *ActionRepositoryIntegrationTestSuite) TestAdd_TakenTarget_ReturnsObjectExists() {
	ctx := context.Background()
	first := suite.newGroupAction("R1", "ZoneA", "FIRST")
	sameGroup := suite.newGroupAction("R1", "ZoneA", "SECOND")
	firstLocation := suite.newLocationAction("R1", "L-01", "PICK")
	sameLocation := suite.newLocationAction("R1", "L-01", "PICK_AGAIN")
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, firstLocation))

	err := suite.repository.Add(ctx, sameGroup)
	suite.Require().ErrorIs(err, errs.ErrObjectExists)

	err = suite.repository.Add(ctx, sameLocation)
	suite.Require().ErrorIs(err, errs.ErrObjectExists)

	// Same key on another route or another target kind is free.
	suite.Require().NoError(suite.repository.Add(ctx, suite.newGroupAction("R2", "ZoneA", "OTHER_ROUTE")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newLocationAction("R1", "ZoneA", "LOCATION")))
	suite.assertActionCount(4)
}

func (suite *ActionRepositoryIntegrationTestSuite) TestFind_DuplicatePairReturnsOldest() {
	ctx := context.Background()
	// Tables filled before the unique indexes existed may hold duplicates.
	suite.dropUniqueIndexes()
	first := suite.newGroupAction("R1", "ZoneA", "FIRST")
	second := suite.newGroupAction("R1", "ZoneA", "SECOND")
	suite.Require().NoError(suite.repository.Add(ctx, first))
	time.Sleep(10 * time.Millisecond)
	suite.Require().NoError(suite.repository.Add(ctx, second))

	got, err := suite.repository.FindByRouteAndLocationGroupName(ctx, suite.route("R1"), "ZoneA")
	suite.Require().NoError(err)
	suite.Equal("FIRST", got.ProgramKey())
}

func (suite *ActionRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	a := suite.newGroupAction("R1", "ZoneA", "STORE")
	suite.Require().NoError(suite.repository.Add(ctx, a))

	suite.Require().NoError(suite.repository.Delete(ctx, a.ID()))
	suite.assertActionCount(0)

	err := suite.repository.Delete(ctx, a.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ActionRepositoryIntegrationTestSuite) TestListByRoute_LocationRulesFirst() {
	ctx := context.Background()
	groupRule := suite.newGroupAction("R1", "ZoneA", "STORE")
	locationRule := suite.newLocationAction("R1", "L-01", "PICK")
	otherRoute := suite.newGroupAction("R2", "ZoneA", "OTHER")
	for _, a := range []*action.Action{groupRule, locationRule, otherRoute} {
		suite.Require().NoError(suite.repository.Add(ctx, a))
	}

	actions, err := suite.repository.ListByRoute(ctx, suite.route("R1"))
	suite.Require().NoError(err)
	suite.Require().Len(actions, 2)
	suite.True(locationRule.IsEqual(actions[0]))
	suite.True(groupRule.IsEqual(actions[1]))

	actions, err = suite.repository.ListByRoute(ctx, suite.route("R9"))
	suite.Require().NoError(err)
	suite.Empty(actions)
}

func (suite *ActionRepositoryIntegrationTestSuite) dropUniqueIndexes() {
	migrator := suite.db.Migrator()
	suite.Require().NoError(migrator.DropIndex(&actionrepo.ActionDTO{}, "idx_actions_route_location"))
	suite.Require().NoError(migrator.DropIndex(&actionrepo.ActionDTO{}, "idx_actions_route_group"))
}

func (suite *ActionRepositoryIntegrationTestSuite) route(id string) route.Route {
	r, err := route.NewRoute(id)
	suite.Require().NoError(err)
	return r
}

func (suite *ActionRepositoryIntegrationTestSuite) newGroupAction(routeID, group, programKey string) *action.Action {
	target, err := action.NewLocationGroupTarget(group)
	suite.Require().NoError(err)
	return suite.newAction(routeID, target, programKey)
}

func (suite *ActionRepositoryIntegrationTestSuite) newLocationAction(routeID, coordinate, programKey string) *action.Action {
	target, err := action.NewLocationTarget(kernel.MustNewCoordinate(coordinate))
	suite.Require().NoError(err)
	return suite.newAction(routeID, target, programKey)
}

func (suite *ActionRepositoryIntegrationTestSuite) newAction(routeID string, target action.Target, programKey string) *action.Action {
	a, err := action.NewAction(kernel.NewUUID(), suite.route(routeID), target, action.Definition{
		Name:       programKey + " rule",
		ActionType: "MOVE",
		ProgramKey: programKey,
	})
	suite.Require().NoError(err)
	return a
}

func (suite *ActionRepositoryIntegrationTestSuite) assertActionCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&actionrepo.ActionDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestActionRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ActionRepositoryIntegrationTestSuite))
}
