package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thegambler1/qmdigital/api"
	"github.com/thegambler1/qmdigital/config"
	"github.com/thegambler1/qmdigital/database"
	"github.com/thegambler1/qmdigital/models"
)

func main() {
	// Load environment variables from .env file
	envErr := godotenv.Load()

	c := config.New()
	setupLogging(c)

	if envErr != nil {
		log.Warn().Err(envErr).Msg("Error loading .env file")
	}
	log.Info().Msg("Initializing app...")

	// If generating models, run generation and exit
	if config.GetBool(c, "GENERATE_MODELS", false) {
		if err := generateModels(c); err != nil {
			log.Fatal().Err(err).Msg("Error generating models")
		}
		return
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	storage := database.Select(startupCtx, database.SelectOptions{
		DatabaseURL: config.GetString(c, "DATABASE_URL", ""),
		AutoMigrate: config.GetBool(c, "AUTO_MIGRATE", true),
		Seed:        config.GetBool(c, "SEED_DATA", true),
	}, log.With().Str("component", "storage").Logger())
	cancel()

	if closer, ok := storage.(io.Closer); ok {
		defer closer.Close()
	}

	// Buffered so the listener can still report ErrServerClosed after shutdown
	errChannel := make(chan error, 2)

	server, err := api.NewServer(storage, c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

func setupLogging(c map[string]string) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetString(c, "LOG_FORMAT", "console") == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

func generateModels(c map[string]string) error {
	dsn := config.GetString(c, "DATABASE_URL", "")
	if dsn == "" {
		return fmt.Errorf("DATABASE_URL is required to generate models")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		return err
	}

	log.Info().Msg("Generating models and query helpers...")
	return models.GenerateModels(db)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-ch)
}
