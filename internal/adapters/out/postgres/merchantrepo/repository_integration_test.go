package merchantrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/merchantrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/merchant"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// MerchantRepositoryIntegrationTestSuite provides integration tests for
// MerchantRepository using PostgreSQL containers.
type MerchantRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *merchantrepo.GormMerchantRepository
	tracker    *MockAggregateTracker
}

func (suite *MerchantRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&merchantrepo.MerchantDTO{})
	suite.Require().NoError(err)
}

func (suite *MerchantRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *MerchantRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE merchants RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = merchantrepo.NewGormMerchantRepository(suite.db, suite.tracker)
}

func (suite *MerchantRepositoryIntegrationTestSuite) newMerchant(username, shopName string) *merchant.Merchant {
	m, err := merchant.NewMerchant(kernel.NewUUID(), username, "s3cret", shopName)
	suite.Require().NoError(err)
	return m
}

func (suite *MerchantRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	m := suite.newMerchant("alice", "Corner Deli")

	suite.Require().NoError(suite.repository.Add(ctx, m))

	loaded, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.Equal("alice", loaded.Username())
	suite.Equal("Corner Deli", loaded.ShopName())
	suite.True(loaded.VerifySecret("s3cret"))
}

func (suite *MerchantRepositoryIntegrationTestSuite) TestGetByUsername() {
	ctx := context.Background()
	m := suite.newMerchant("alice", "Corner Deli")
	suite.Require().NoError(suite.repository.Add(ctx, m))

	loaded, err := suite.repository.GetByUsername(ctx, "alice")
	suite.Require().NoError(err)
	suite.Equal(m.ID().String(), loaded.ID().String())

	_, err = suite.repository.GetByUsername(ctx, "ghost")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MerchantRepositoryIntegrationTestSuite) TestGetByShopName() {
	ctx := context.Background()
	m := suite.newMerchant("alice", "Corner Deli")
	suite.Require().NoError(suite.repository.Add(ctx, m))

	loaded, err := suite.repository.GetByShopName(ctx, "Corner Deli")
	suite.Require().NoError(err)
	suite.Equal("alice", loaded.Username())

	_, err = suite.repository.GetByShopName(ctx, "Nowhere")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MerchantRepositoryIntegrationTestSuite) TestAdd_DuplicateUsernameRejectedByDatabase() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newMerchant("alice", "Corner Deli")))

	err := suite.repository.Add(ctx, suite.newMerchant("alice", "Other Shop"))
	suite.Require().Error(err)
}

func (suite *MerchantRepositoryIntegrationTestSuite) TestAdd_DuplicateShopNameRejectedByDatabase() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newMerchant("alice", "Corner Deli")))

	err := suite.repository.Add(ctx, suite.newMerchant("bob", "Corner Deli"))
	suite.Require().Error(err)
}

func TestMerchantRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MerchantRepositoryIntegrationTestSuite))
}
