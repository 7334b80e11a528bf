package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/showdown/internal/common/clock"
	"github.com/KirkDiggler/showdown/internal/common/timer"
	"github.com/KirkDiggler/showdown/internal/common/uuid"
	"github.com/KirkDiggler/showdown/internal/dice"
	"github.com/KirkDiggler/showdown/internal/handlers/discord"
	"github.com/KirkDiggler/showdown/internal/repositories/scores"
	"github.com/KirkDiggler/showdown/internal/services/tournament"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

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
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	// Initialize the score ledger
	scoreRepo, err := scores.NewRedis(&scores.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create score repository")
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		logger.Fatal().Msg("DISCORD_TOKEN environment variable is required")
	}

	// The session is created up front so the event renderer and the bot
	// share it
	session, err := discordgo.New("Bot " + discordToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord session")
	}

	notifier := discord.NewNotifier(session, logger)

	// Initialize the tournament service
	tournamentSvc, err := tournament.New(&tournament.Config{
		ScoreRepo:    scoreRepo,
		Roller:       dice.New(&dice.Config{}),
		Scheduler:    timer.New(),
		Clock:        &clock.DefaultClock{},
		UUID:         uuid.New(),
		Notifier:     notifier,
		Logger:       logger,
		BestOf:       getEnvInt("TOURNEY_BEST_OF", 0),
		ReadyTimeout: getEnvDuration("TOURNEY_READY_TIMEOUT", 0),
		RollTimeout:  getEnvDuration("TOURNEY_ROLL_TIMEOUT", 0),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create tournament service")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:           session,
		ApplicationID:     getEnv("APPLICATION_ID", ""),
		GuildID:           getEnv("GUILD_ID", ""),
		TournamentService: tournamentSvc,
		Logger:            logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot, then drain pending event deliveries
	if err := bot.Stop(); err != nil {
		logger.Error().Err(err).Msg("error stopping bot")
	}
	notifier.Close()

	logger.Info().Msg("bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt parses an integer environment variable; unset or malformed
// values fall back to the default
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

// getEnvDuration parses a duration environment variable, e.g. "90s"
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
