package customerrepo_test

import (
	"context"
	"testing"

	"purchasing/internal/adapters/out/postgres/customerrepo"
	"purchasing/internal/core/domain/model/customer"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *customerrepo.GormCustomerRepository
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&customerrepo.CustomerDTO{})
	suite.Require().NoError(err)

	suite.repo = customerrepo.NewGormCustomerRepository(db, &noopTracker{})
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE customers").Error
	suite.Require().NoError(err)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_And_Get() {
	ctx := context.Background()
	testCustomer := suite.newCustomer("Alice Johnson", 34)

	err := suite.repo.Add(ctx, testCustomer)
	suite.Require().NoError(err)

	stored, err := suite.repo.Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.True(testCustomer.IsEqual(stored))
	suite.Equal("Alice Johnson", stored.Name())
	suite.Equal(34, stored.Age())
	suite.Require().NoError(stored.Validate())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repo.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_PersistsDerivedCopy() {
	ctx := context.Background()
	original := suite.newCustomer("Alice Johnson", 34)

	err := suite.repo.Add(ctx, original)
	suite.Require().NoError(err)

	renamed, err := original.WithName("Alice Smith")
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, renamed)
	suite.Require().NoError(err)

	stored, err := suite.repo.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal("Alice Smith", stored.Name())
	suite.Equal(34, stored.Age())

	// The original in-memory instance keeps its old name.
	suite.Equal("Alice Johnson", original.Name())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_AgeDerivation() {
	ctx := context.Background()
	original := suite.newCustomer("Bob Smith", 41)

	err := suite.repo.Add(ctx, original)
	suite.Require().NoError(err)

	older, err := original.WithAge(42)
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, older)
	suite.Require().NoError(err)

	stored, err := suite.repo.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(42, stored.Age())
	suite.Equal("Bob Smith", stored.Name())
}

func (suite *CustomerRepositoryIntegrationTestSuite) newCustomer(name string, age int) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), &name, age)
	suite.Require().NoError(err)
	return c
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}

// noopTracker implements the aggregate tracker for repository tests where
// tracking is irrelevant.
type noopTracker struct{}

func (t *noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}
