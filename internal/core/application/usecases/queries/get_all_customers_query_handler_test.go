package queries_test

import (
	"context"
	"testing"
	"time"

	"purchasing/internal/adapters/out/postgres/customerrepo"
	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/domain/model/customer"
	"purchasing/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllCustomersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllCustomersQueryHandler
}

func (suite *GetAllCustomersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&customerrepo.CustomerDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllCustomersQueryHandler(db)
}

func (suite *GetAllCustomersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllCustomersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE customers CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllCustomersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllCustomersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllCustomersQueryHandlerTestSuite) TestHandle_WithCustomers_ReturnsAllCustomersOrderedByName() {
	customers := suite.createTestCustomers()
	suite.saveCustomers(customers)

	query := queries.NewGetAllCustomersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)

	suite.Equal("Alice", result[0].Name)
	suite.Equal(customers[0].ID(), result[0].ID)
	suite.Equal(customers[0].Age(), result[0].Age)

	suite.Equal("Bob", result[1].Name)
	suite.Equal(customers[1].ID(), result[1].ID)
	suite.Equal(customers[1].Age(), result[1].Age)

	suite.Equal("Charlie", result[2].Name)
	suite.Equal(customers[2].ID(), result[2].ID)
	suite.Equal(customers[2].Age(), result[2].Age)
}

func (suite *GetAllCustomersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllCustomersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllCustomersQuery constructor")
}

func (suite *GetAllCustomersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.saveCustomers(suite.createTestCustomers())

	query := queries.NewGetAllCustomersQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetAllCustomersQueryHandlerTestSuite) createTestCustomers() []*customer.Customer {
	customers := make([]*customer.Customer, 0)

	for _, c := range []struct {
		name string
		age  int
	}{
		{"Alice", 34},
		{"Bob", 41},
		{"Charlie", 27},
	} {
		name := c.name
		created, err := customer.NewCustomer(kernel.NewUUID(), &name, c.age)
		suite.Require().NoError(err)
		customers = append(customers, created)
	}

	return customers
}

func (suite *GetAllCustomersQueryHandlerTestSuite) saveCustomers(customers []*customer.Customer) {
	repo := customerrepo.NewGormCustomerRepository(suite.db, &mockAggregateTracker{})
	for _, c := range customers {
		err := repo.Add(context.Background(), c)
		suite.Require().NoError(err)
	}
}

func TestGetAllCustomersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllCustomersQueryHandlerTestSuite))
}

// mockAggregateTracker implements the aggregate tracker for test purposes.
// It's a no-op implementation since we don't need aggregate tracking in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}
