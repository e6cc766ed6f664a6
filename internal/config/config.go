package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/krishisaathi/server/adapters/llm"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config is the process configuration read from the environment
type Config struct {
	Port string

	// Text generation
	GenerationProvider string
	Gemini             llm.GeminiConfig
	OpenAI             llm.OpenAIConfig

	// Speech synthesis uses ambient Google Cloud credentials
	TTSEnabled bool

	// Static front-end
	StaticDir     string
	EntryDocument string

	AllowedOrigin  string
	LogDevelopment bool
}

// Load reads .env if present and then the process environment
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the process environment only
func FromEnv() Config {
	return Config{
		Port:               getEnvDefault("PORT", "5000"),
		GenerationProvider: strings.ToLower(getEnvDefault("GENERATION_PROVIDER", ProviderGemini)),
		Gemini: llm.GeminiConfig{
			APIKey: os.Getenv("GOOGLE_API_KEY"),
			Model:  getEnvDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		OpenAI: llm.OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   getEnvDefault("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		},
		TTSEnabled:     getEnvBoolDefault("TTS_ENABLED", true),
		StaticDir:      getEnvDefault("STATIC_DIR", "static"),
		EntryDocument:  getEnvDefault("ENTRY_DOCUMENT", "index.html"),
		AllowedOrigin:  getEnvDefault("ALLOWED_ORIGIN", "*"),
		LogDevelopment: getEnvBoolDefault("LOG_DEVELOPMENT", false),
	}
}

// Address is the listen address for the HTTP server
func (c Config) Address() string {
	return ":" + c.Port
}

func getEnvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvBoolDefault(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
