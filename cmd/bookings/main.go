package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"travelbook/internal/bookings/handler"
	"travelbook/internal/bookings/repository"
	"travelbook/internal/bookings/service"
	"travelbook/internal/bookings/validator"
	"travelbook/pkg/app"
	"travelbook/pkg/client"
	"travelbook/pkg/config"
	"travelbook/pkg/events"
)

const ServiceName = "bookings"

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting bookings service")

	mongoClient, err := client.ConnectMongo(context.Background(), cfg.MongoURI, cfg.MongoConnTimeout)
	if err != nil {
		cfg.Log.Fatal("MongoDB connection failed", "error", err)
	}
	cfg.Log.Info("Successfully connected to MongoDB")

	publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaEventsTopic, ServiceName, cfg.Log)
	if publisher != nil {
		cfg.Log.Info("Event publisher enabled", "topic", cfg.KafkaEventsTopic)
	}

	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg, mongoClient)
	bookingService := service.NewBookingService(bookingRepo, bookingValidator, publisher, cfg)
	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewBookingHandler(bookingService, cfg.Log),
		handler.NewHealthHandler(mongoClient, cfg.Log),
	)

	if cfg.SweepEnabled {
		sweeper := service.NewSweeper(bookingService, cfg)
		sweeper.Start()
		serverApp.OnShutdown(sweeper.Stop)
	}

	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})
	serverApp.OnShutdown(func() {
		if err := client.DisconnectMongo(context.Background(), mongoClient, 10*time.Second); err != nil {
			cfg.Log.Error("Failed to disconnect from MongoDB", "error", err)
		}
	})

	serverApp.Run()
}
