package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/hidayahlabs/dhikrd/internal/common/clock"
	"github.com/hidayahlabs/dhikrd/internal/common/random"
	"github.com/hidayahlabs/dhikrd/internal/common/uuid"
	"github.com/hidayahlabs/dhikrd/internal/content"
	"github.com/hidayahlabs/dhikrd/internal/handlers/httpapi"
	"github.com/hidayahlabs/dhikrd/internal/livefeed"
	"github.com/hidayahlabs/dhikrd/internal/prayertimes"
	clickEventRepo "github.com/hidayahlabs/dhikrd/internal/repositories/clickevent"
	participantRepo "github.com/hidayahlabs/dhikrd/internal/repositories/participant"
	sessionRepo "github.com/hidayahlabs/dhikrd/internal/repositories/session"
	"github.com/hidayahlabs/dhikrd/internal/services/rotation"
	sessionService "github.com/hidayahlabs/dhikrd/internal/services/session"
)

func main() {
	// Missing .env is fine in deployed environments
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Fatal("failed to connect to Redis")
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
		Logger:      logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create session repository")
	}

	participants, err := participantRepo.NewRedis(&participantRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create participant repository")
	}

	clickEvents, err := clickEventRepo.NewRedis(&clickEventRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create click event repository")
	}

	feed, err := livefeed.NewRedis(&livefeed.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create live feed")
	}

	// Initialize services
	sessionSvc, err := sessionService.New(&sessionService.Config{
		DefaultMaxParticipants: getEnvInt("MAX_PARTICIPANTS", 100),
		SessionRepo:            sessions,
		ParticipantRepo:        participants,
		ClickEventRepo:         clickEvents,
		Clock:                  &clock.DefaultClock{},
		UUIDGenerator:          uuid.New(),
		Random:                 random.New(&random.Config{}),
		Feed:                   feed,
		Logger:                 logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create session service")
	}

	resolver, err := prayertimes.New(&prayertimes.Config{
		DefaultLatitude:   getEnvFloat("DEFAULT_LATITUDE", 21.4225),
		DefaultLongitude:  getEnvFloat("DEFAULT_LONGITUDE", 39.8262),
		CalculationMethod: getEnvInt("CALC_METHOD", 2),
		Clock:             &clock.DefaultClock{},
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create prayer times resolver")
	}

	provider, err := content.New(&content.Config{
		Random: random.New(&random.Config{}),
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create content provider")
	}

	rotationSvc, err := rotation.New(&rotation.Config{
		Interval: time.Duration(getEnvInt("ROTATION_INTERVAL_SECONDS", 60)) * time.Second,
		Sessions: sessionSvc,
		Resolver: resolver,
		Content:  provider,
		Clock:    &clock.DefaultClock{},
		Logger:   logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create rotation service")
	}

	// Initialize HTTP handler
	handler, err := httpapi.New(&httpapi.Config{
		Sessions:   sessionSvc,
		Rotation:   rotationSvc,
		Feed:       feed,
		AdminToken: getEnv("ADMIN_TOKEN", ""),
		Logger:     logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create HTTP handler")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler.Register(router)

	server := &http.Server{
		Addr:    getEnv("HTTP_ADDR", ":8080"),
		Handler: router,
	}

	// Run the rotation controller alongside the HTTP server
	runCtx, stopRotation := context.WithCancel(context.Background())
	go rotationSvc.Run(runCtx)

	go func() {
		logger.WithField("addr", server.Addr).Info("dhikrd listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	stopRotation()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("error shutting down HTTP server")
	}

	logger.Info("dhikrd has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
