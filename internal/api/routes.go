package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/krishisaathi/server/domain"
	"github.com/krishisaathi/server/usecase"
)

const (
	mimeAudioMPEG  = "audio/mpeg"
	speechFilename = "tts.mp3"
)

var errInvalidBody = domain.NewValidationError("invalid request body")

// Dependencies are the services exposed over HTTP
type Dependencies struct {
	Chat   *usecase.ChatService
	Speech *usecase.SpeechService
	Static StaticConfig
}

// InitRoutes initializes all routes
func InitRoutes(e *echo.Echo, deps Dependencies, logger *zap.Logger) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "krishi-saathi",
		})
	})

	apiGroup := e.Group("/api")
	apiGroup.POST("/chat", func(c echo.Context) error {
		return chat(c, deps.Chat, logger)
	})
	apiGroup.POST("/tts", func(c echo.Context) error {
		return textToSpeech(c, deps.Speech, logger)
	})

	// Front-end bundle
	e.GET("/", serveEntry(deps.Static))
	e.GET("/*", serveAsset(deps.Static))
}

func chat(c echo.Context, service *usecase.ChatService, logger *zap.Logger) error {
	var req ChatRequest
	if err := decodeBody(c, &req); err != nil {
		logger.Warn("Failed to decode chat request", zap.Error(err))
		return errInvalidBody
	}

	reply, err := service.Reply(c.Request().Context(), req.Message, req.Lang)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}

func textToSpeech(c echo.Context, service *usecase.SpeechService, logger *zap.Logger) error {
	var req TTSRequest
	if err := decodeBody(c, &req); err != nil {
		logger.Warn("Failed to decode tts request", zap.Error(err))
		return errInvalidBody
	}

	audio, err := service.Speak(c.Request().Context(), req.Text, req.Lang)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+speechFilename+`"`)
	return c.Blob(http.StatusOK, mimeAudioMPEG, audio)
}

// decodeBody parses the body as JSON whatever its Content-Type.
// An empty body leaves v at its zero value.
func decodeBody(c echo.Context, v any) error {
	err := json.NewDecoder(c.Request().Body).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
