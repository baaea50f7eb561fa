package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"owl/bot"
	"owl/config"
	"owl/database"
	"owl/infrastructure"
	"owl/repository"
	"owl/domain/services"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting owl bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize repositories and services
	settingsRepo := repository.NewGuildSettingsRepository(db)
	settingsService := services.NewGuildSettingsService(settingsRepo)

	// Initialize capability adapters
	openaiClient := infrastructure.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.TempDir)
	languageIdentifier := infrastructure.NewLinguaIdentifier()
	fileFetcher := infrastructure.NewHTTPFetcher(cfg.HandlerTimeout)

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:          cfg.DiscordToken,
		GuildID:        cfg.GuildID,
		HandlerTimeout: cfg.HandlerTimeout,
		TempDir:        cfg.TempDir,
	}
	discordBot, err := bot.New(botConfig, bot.Deps{
		SettingsService: settingsService,
		Chat:            openaiClient,
		Languages:       languageIdentifier,
		Transcriber:     openaiClient,
		Synthesizer:     openaiClient,
		Fetcher:         fileFetcher,
		Definitions:     openaiClient,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}

	// Give cleanup operations time to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Close database connection
	log.Println("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Println("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Println("Shutdown completed")
	}

	return nil
}
