package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "purchasing/internal/adapters/out/postgres"
	"purchasing/internal/adapters/out/postgres/customerrepo"
	"purchasing/internal/adapters/out/postgres/purchaserepo"
	"purchasing/internal/core/domain/model/customer"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchase"
	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&customerrepo.CustomerDTO{}, &purchaserepo.PurchaseDTO{}, &purchaserepo.LineDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE customers, purchases, purchase_lines").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.CustomerRepository(), "First instance should provide customer repository")
	suite.NotNil(uow1.PurchaseRepository(), "First instance should provide purchase repository")
	suite.NotNil(uow2.CustomerRepository(), "Second instance should provide customer repository")
	suite.NotNil(uow2.PurchaseRepository(), "Second instance should provide purchase repository")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Commit without active transaction should fail")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Rollback without active transaction should fail")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommittedChangesPersist() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testCustomer := suite.newCustomer("Alice Johnson", 34)
	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Visible through a fresh unit of work
	verifyUow := suite.factory.Create()
	stored, err := verifyUow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.True(testCustomer.IsEqual(stored))
	suite.Equal("Alice Johnson", stored.Name())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testCustomer := suite.newCustomer("Bob Smith", 41)
	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	verifyUow := suite.factory.Create()
	_, err = verifyUow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CrossAggregateTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testCustomer := suite.newCustomer("Carol White", 29)
	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)

	testPurchase, err := purchase.NewPurchase(kernel.NewUUID(), testCustomer.ID())
	suite.Require().NoError(err)

	err = uow.PurchaseRepository().Add(ctx, testPurchase)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	verifyUow := suite.factory.Create()
	storedPurchase, err := verifyUow.PurchaseRepository().Get(ctx, testPurchase.ID())
	suite.Require().NoError(err)
	suite.Equal(testCustomer.ID(), storedPurchase.CustomerID())
	suite.Equal(purchase.Draft, storedPurchase.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CrossAggregateRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testCustomer := suite.newCustomer("Dave Brown", 52)
	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)

	testPurchase, err := purchase.NewPurchase(kernel.NewUUID(), testCustomer.ID())
	suite.Require().NoError(err)

	err = uow.PurchaseRepository().Add(ctx, testPurchase)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Neither aggregate is persisted
	verifyUow := suite.factory.Create()
	_, err = verifyUow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = verifyUow.PurchaseRepository().Get(ctx, testPurchase.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentInstancesAreIsolated() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	customer1 := suite.newCustomer("Eve Green", 27)
	err = uow1.CustomerRepository().Add(ctx, customer1)
	suite.Require().NoError(err)

	customer2 := suite.newCustomer("Frank Black", 63)
	err = uow2.CustomerRepository().Add(ctx, customer2)
	suite.Require().NoError(err)

	// Commit one, roll back the other
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	verifyUow := suite.factory.Create()
	_, err = verifyUow.CustomerRepository().Get(ctx, customer1.ID())
	suite.Require().NoError(err)

	_, err = verifyUow.CustomerRepository().Get(ctx, customer2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) newCustomer(name string, age int) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), &name, age)
	suite.Require().NoError(err)
	return c
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
