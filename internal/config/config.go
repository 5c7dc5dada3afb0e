package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	Env         string
	StaticDir   string
	LogLevel    string
	Seed        bool

	// OpenAI configuration
	OpenAIAPIKey        string
	OpenAIInsightsModel string

	// Langfuse configuration
	LangfuseBaseURL   string
	LangfusePublicKey string
	LangfuseSecretKey string
	LangfuseEnv       string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "3001"),
		DatabaseURL: getEnv("DATABASE_URL", "pulsepath.db"),
		Env:         getEnv("ENV", "development"),
		StaticDir:   getEnv("STATIC_DIR", "build"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Seed:        getEnv("SEED", "false") == "true",

		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIInsightsModel: getEnv("OPENAI_INSIGHTS_MODEL", "gpt-4o-mini"),

		LangfuseBaseURL:   getEnv("LANGFUSE_BASE_URL", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseEnv:       getEnv("LANGFUSE_ENV", "development"),
	}
}

// Production reports whether the service should serve the bundled front end.
func (c *Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
