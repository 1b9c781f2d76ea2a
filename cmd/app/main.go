package main

import (
	"database/sql"
	"fmt"
	nethttp "net/http"
	"os"

	"marketplace/cmd"
	_ "marketplace/docs"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres/buyerrepo"
	"marketplace/internal/adapters/out/postgres/merchantrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/generated/servers"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	createDbIfNotExists(
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	connectionString, err := makeConnectionString(
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
	if err != nil {
		log.Fatalf("Error building connection string: %v", err)
	}

	gormDB := mustGormOpen(connectionString)
	migrateDb(gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error composing application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		SessionTTL:          goDotEnvVariable("SESSION_TTL"),
		OrderTransitionMode: goDotEnvVariable("ORDER_TRANSITION_MODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateRegisterMerchantCommandHandler(),
		app.CreateRegisterBuyerCommandHandler(),
		app.CreateLogInCommandHandler(),
		app.CreateLogOutCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetShopsQueryHandler(),
		app.CreateGetMerchantDashboardQueryHandler(),
		app.CreateGetMerchantBuyerOrdersQueryHandler(),
		app.CreateGetBuyerOrdersQueryHandler(),
		app.SessionStore(),
		app.AccessPolicy(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

func createDbIfNotExists(host, port, user, password, dbName, sslMode string) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		host, port, user, password, sslMode)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error connecting to postgres: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists)
	if err != nil {
		log.Fatalf("Error checking database existence: %v", err)
	}

	if !exists {
		_, err = db.Exec(fmt.Sprintf("CREATE DATABASE %s", pq.QuoteIdentifier(dbName)))
		if err != nil {
			log.Fatalf("Error creating database: %v", err)
		}
	}
}

func makeConnectionString(host, port, user, password, dbName, sslMode string) (string, error) {
	if host == "" || port == "" || user == "" || password == "" || dbName == "" || sslMode == "" {
		return "", fmt.Errorf("incomplete database configuration")
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode), nil
}

func mustGormOpen(connectionString string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(connectionString), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func migrateDb(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&merchantrepo.MerchantDTO{},
		&buyerrepo.BuyerDTO{},
		&orderrepo.OrderDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}
