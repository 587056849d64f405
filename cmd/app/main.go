package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fastfood/cmd"
	"fastfood/internal/adapters/in/http"
	"fastfood/internal/adapters/in/ws"
	"fastfood/internal/adapters/out/postgres/catalogrepo"
	"fastfood/internal/adapters/out/postgres/deliveryrepo"
	"fastfood/internal/adapters/out/postgres/orderrepo"
	"fastfood/internal/adapters/out/postgres/paymentrepo"
	"fastfood/internal/adapters/out/postgres/trackingrepo"
	"fastfood/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := getConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(config)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	root, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}
	defer func() {
		if err := root.Close(); err != nil {
			logger.Error("Shutdown cleanup failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root.Start(ctx)

	jobManager := jobs.NewJobManager(root.CreateCancelExpiredOrdersCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := buildEcho(root)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil &&
			err != nethttp.ErrServerClosed {
			logger.Error("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}

func buildEcho(root *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	wsHandler := ws.NewHandler(root.Hub(), root.Catalog())

	server := http.NewServer(http.ServerParams{
		CreateOrderHandler:       root.CreateCreateOrderCommandHandler(),
		UpdateOrderHandler:       root.CreateUpdateOrderCommandHandler(),
		ChangeOrderStatusHandler: root.CreateChangeOrderStatusCommandHandler(),
		CancelOrderHandler:       root.CreateCancelOrderCommandHandler(),
		CreatePaymentHandler:     root.CreateCreatePaymentCommandHandler(),
		ResolveCallbackHandler:   root.CreateResolvePaymentCallbackCommandHandler(),
		CreateDeliveryHandler:    root.CreateCreateDeliveryCommandHandler(),
		RecordLocationHandler:    root.CreateRecordDroneLocationCommandHandler(),
		GetOrderHandler:          root.CreateGetOrderQueryHandler(),
		GetOrdersHandler:         root.CreateGetOrdersQueryHandler(),
		GetDeliveriesHandler:     root.CreateGetDeliveriesQueryHandler(),
		GetLocationHandler:       root.CreateGetDroneLocationQueryHandler(),
		PaymentGateway:           root.Gateway(),
		SubscribeLocationFunc:    wsHandler.Subscribe,
	})
	server.RegisterRoutes(e)

	return e
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode,
	)
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogrepo.UserDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.MenuItemDTO{},
		&catalogrepo.DroneDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&paymentrepo.PaymentDTO{},
		&deliveryrepo.DeliveryDTO{},
		&trackingrepo.DroneLocationDTO{},
	)
}

func getConfig() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn("No .env file found, relying on process environment")
	}

	return cmd.Config{
		HTTPPort:             envOr("HTTP_PORT", "8080"),
		DBHost:               envOr("DB_HOST", "localhost"),
		DBPort:               envOr("DB_PORT", "5432"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            envOr("DB_SSLMODE", "disable"),
		AmqpURL:              os.Getenv("AMQP_URL"),
		AmqpLocationExchange: envOr("AMQP_LOCATION_EXCHANGE", "drone.locations"),
		VNPayBaseURL:         os.Getenv("VNPAY_BASE_URL"),
		VNPayTmnCode:         os.Getenv("VNPAY_TMN_CODE"),
		VNPayHashSecret:      os.Getenv("VNPAY_HASH_SECRET"),
		VNPayReturnURL:       os.Getenv("VNPAY_RETURN_URL"),
		GeocoderBaseURL:      envOr("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
