package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"restaurant/cmd"
	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/in/http/kitchenauth"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/productrepo"
	"restaurant/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	root := cmd.NewCompositionRoot(configs, gormDB, logger)
	publisher := root.CreateOrderPlacedPublisher()

	server := httpadapter.NewServer(
		root.CreateCreateOrderCommandHandler(publisher),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateDeleteOrderCommandHandler(),
		root.CreateDeleteAllOrdersCommandHandler(),
		root.CreateGetOrdersQueryHandler(),
		root.CreateGetOrderByIDQueryHandler(),
		root.CreateGetMenuQueryHandler(),
	)

	startWebServer(configs, server, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:    goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaOrderPlacedTopic: goDotEnvVariable("KAFKA_ORDER_PLACED_TOPIC"),
		KitchenToken:          goDotEnvVariable("KITCHEN_TOKEN"),
		KitchenTokenHeader:    goDotEnvVariable("KITCHEN_TOKEN_HEADER"),
		PreparationTime:       preparationTime(),
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

func preparationTime() time.Duration {
	raw := goDotEnvVariable("PREPARATION_TIME")
	if raw == "" {
		return 5 * time.Minute
	}

	prepTime, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid PREPARATION_TIME: %v", err)
	}
	return prepTime
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&productrepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(configs cmd.Config, server servers.ServerInterface, logger *slog.Logger) {
	e := echo.New()
	e.HTTPErrorHandler = httpadapter.NewHTTPErrorHandler(logger)

	gate := kitchenauth.NewKitchenGate(configs.KitchenToken)
	e.Use(kitchenauth.Middleware(gate, configs.KitchenTokenHeader))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
