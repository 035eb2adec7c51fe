package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/meme-pulse/dlmm-strategy-engine/internal/advisor"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/config"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/logger"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/state"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/web"
)

// main is the entry point for the strategy engine.
func main() {
	// --- 1. Initialization Phase ---
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("Warning: .env file not found. Relying on OS environment variables.")
	}

	// Load configuration from environment variables
	if err := config.LoadConfig(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Initialize(os.Getenv("LOG_LEVEL"))
	log.Info().Msg("DLMM Strategy Engine Starting...")

	// Initialize Database Connection (suggestion history only; optional)
	historyEnabled := config.DBHost != ""
	if historyEnabled {
		dbCfg := state.DBConfig{
			Host: config.DBHost, Port: config.DBPort,
			User: config.DBUser, Password: config.DBPassword,
			DBName: config.DBName, SSLMode: config.DBSSLMode,
		}
		if err := state.InitDB(dbCfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize database")
		}
		defer state.CloseDB()
		if err := state.EnsureSchema(); err != nil {
			log.Fatal().Err(err).Msg("Failed to ensure database schema")
		}
	}

	// --- 2. Strategy Client ---
	client := advisor.NewClient(config.AnthropicAPIKey, config.AnthropicModel, config.AnthropicMaxTokens)

	// --- 3. Start Web Server ---
	webServer := web.NewWebServer(config.WebPort, client, historyEnabled)
	go func() {
		log.Info().Str("port", config.WebPort).Str("url", "http://localhost:"+config.WebPort).Msg("Starting strategy API")
		if err := webServer.Start(); err != nil {
			log.Fatal().Err(err).Msg("Web server failed")
		}
	}()

	// Block until interrupted.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down")
}
