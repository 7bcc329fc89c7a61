package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	mongoMigration "travelbook/internal/migrations/mongo"
	"travelbook/pkg/client"
	"travelbook/pkg/config"
)

const JobName = "mongo-migration"

func main() {
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.Log.Info("Starting Mongo migration job")

	mongoClient, err := client.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoConnTimeout)
	if err != nil {
		cfg.Log.Fatal("MongoDB connection failed", "error", err)
	}
	defer func() {
		if err := client.DisconnectMongo(context.Background(), mongoClient, 10*time.Second); err != nil {
			cfg.Log.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}()

	if err := mongoMigration.RunMigration(ctx, mongoClient, cfg.MongoDatabaseName); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}

	cfg.Log.Info("Migration completed successfully")
}
