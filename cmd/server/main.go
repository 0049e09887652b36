package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/claytrack/internal/common/clock"
	"github.com/KirkDiggler/claytrack/internal/common/uuid"
	"github.com/KirkDiggler/claytrack/internal/handlers/rest"
	fixtureRepo "github.com/KirkDiggler/claytrack/internal/repositories/fixture"
	sessionRepo "github.com/KirkDiggler/claytrack/internal/repositories/session"
	calendarService "github.com/KirkDiggler/claytrack/internal/services/calendar"
	fixtureService "github.com/KirkDiggler/claytrack/internal/services/fixture"
	sessionService "github.com/KirkDiggler/claytrack/internal/services/session"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

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
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session repository")
	}

	fixtures, err := fixtureRepo.NewRedis(&fixtureRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create fixture repository")
	}

	// Initialize services
	sessionSvc, err := sessionService.New(&sessionService.Config{
		SessionRepo:   sessions,
		FixtureRepo:   fixtures,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session service")
	}

	fixtureSvc, err := fixtureService.New(&fixtureService.Config{
		FixtureRepo:   fixtures,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create fixture service")
	}

	calendarSvc, err := calendarService.New(&calendarService.Config{
		SessionRepo: sessions,
		FixtureRepo: fixtures,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create calendar service")
	}

	// Initialize the REST handler
	handler, err := rest.New(&rest.Config{
		SessionService:  sessionSvc,
		FixtureService:  fixtureSvc,
		CalendarService: calendarSvc,
		Logger:          log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create REST handler")
	}

	// CORS is wide open, matching the deployment behind a trusted frontend
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodHead, http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    ":" + getEnv("PORT", "8080"),
		Handler: c.Handler(handler.Routes()),
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error shutting down server")
	}

	if err := redisClient.Close(); err != nil {
		log.Error().Err(err).Msg("error closing redis client")
	}

	log.Info().Msg("server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
