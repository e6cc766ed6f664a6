package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/krishisaathi/server/adapters/llm"
	"github.com/krishisaathi/server/adapters/tts"
	"github.com/krishisaathi/server/domain/repositories"
	"github.com/krishisaathi/server/internal/api"
	"github.com/krishisaathi/server/internal/config"
	"github.com/krishisaathi/server/usecase"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	logger := newLogger(cfg)
	defer logger.Sync()

	ctx := context.Background()

	// Initialize adapters
	generator := newTextGenerator(ctx, cfg, logger)
	synthesizer, closeSynthesizer := newSpeechSynthesizer(ctx, cfg, logger)
	defer closeSynthesizer()

	// Initialize usecase services
	chatService := usecase.NewChatService(generator, logger)
	speechService := usecase.NewSpeechService(synthesizer, logger)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	api.InitMiddleware(e, cfg.AllowedOrigin, logger)
	api.InitRoutes(e, api.Dependencies{
		Chat:   chatService,
		Speech: speechService,
		Static: api.StaticConfig{Root: cfg.StaticDir, EntryDocument: cfg.EntryDocument},
	}, logger)

	// Graceful shutdown
	go func() {
		if err := e.Start(cfg.Address()); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started",
		zap.String("port", cfg.Port),
		zap.String("staticDir", cfg.StaticDir))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func newLogger(cfg config.Config) *zap.Logger {
	build := zap.NewProduction
	if cfg.LogDevelopment {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newTextGenerator never fails: a provider that cannot be built is replaced
// by an UnavailableGenerator so the server still starts.
func newTextGenerator(ctx context.Context, cfg config.Config, logger *zap.Logger) repositories.TextGenerator {
	switch cfg.GenerationProvider {
	case config.ProviderOpenAI:
		generator, err := llm.NewOpenAIGenerator(cfg.OpenAI, logger)
		if err != nil {
			logger.Warn("OPENAI_API_KEY not set. The server will start but chat calls will fail until you set it.", zap.Error(err))
			return llm.UnavailableGenerator{Reason: "OPENAI_API_KEY is not set"}
		}
		return generator

	case config.ProviderGemini:
		if cfg.Gemini.APIKey == "" {
			logger.Warn("GOOGLE_API_KEY not set. The server will start but Gemini calls will fail until you set it.")
			return llm.UnavailableGenerator{Reason: "GOOGLE_API_KEY is not set"}
		}
		generator, err := llm.NewGeminiGenerator(ctx, cfg.Gemini, logger)
		if err != nil {
			logger.Error("Failed to initialize Gemini client", zap.Error(err))
			return llm.UnavailableGenerator{Reason: err.Error()}
		}
		logger.Info("Gemini text generation ready", zap.String("model", generator.Model()))
		return generator

	default:
		logger.Error("Unknown generation provider", zap.String("provider", cfg.GenerationProvider))
		return llm.UnavailableGenerator{Reason: "unknown provider " + cfg.GenerationProvider}
	}
}

func newSpeechSynthesizer(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories.SpeechSynthesizer, func()) {
	if !cfg.TTSEnabled {
		logger.Info("Text-to-speech disabled by configuration")
		return tts.UnavailableSynthesizer{Reason: "disabled by TTS_ENABLED"}, func() {}
	}

	synthesizer, err := tts.NewGoogleSynthesizer(ctx, logger)
	if err != nil {
		logger.Warn("Text-to-speech client unavailable; /api/tts will return errors", zap.Error(err))
		return tts.UnavailableSynthesizer{Reason: err.Error()}, func() {}
	}

	return synthesizer, func() {
		if err := synthesizer.Close(); err != nil {
			logger.Warn("Failed to close text-to-speech client", zap.Error(err))
		}
	}
}
