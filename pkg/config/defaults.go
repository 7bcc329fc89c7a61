package config

import "time"

const (
	DefaultMongoDatabaseName = "travelbook"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultSweepEnabled  = true
	DefaultSweepTimezone = "Local"
	DefaultSweepTimeout  = 1 * time.Minute

	DefaultKafkaEventsTopic = "booking-events"
)
