package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App  AppConfig
	Faq  FaqConfig
	Keys APIKeys
	Ai   AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	ComplaintLogPath   string
	SessionTimeout     time.Duration
}

type FaqConfig struct {
	SheetURL string
	CacheTTL time.Duration
}

type APIKeys struct {
	OpenAI string
}

type AIConfig struct {
	EmbeddingProvider string // "openai" or "ollama"
	EmbeddingModel    string
	OllamaBaseURL     string
	LLMProvider       string // "openai" or "ollama"
	LLMModel          string
	TopK              int
	IndexCacheTTL     time.Duration
}

// DefaultSheetURL is the xlsx export of the college FAQ sheet.
const DefaultSheetURL = "https://docs.google.com/spreadsheets/d/1DiTrHpBKZhk3HZcp0HIdFsO_gTQQ9D-V/export?format=xlsx"

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	faqTTL := time.Duration(getEnvAsInt("FAQ_CACHE_TTL_SECONDS", 600)) * time.Second

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			ComplaintLogPath:   getEnv("COMPLAINT_LOG_PATH", "College_Complaints_Log.csv"),
			SessionTimeout:     time.Duration(getEnvAsInt("SESSION_TIMEOUT_MINUTES", 10)) * time.Minute,
		},
		Faq: FaqConfig{
			SheetURL: getEnv("FAQ_SHEET_URL", DefaultSheetURL),
			CacheTTL: faqTTL,
		},
		Keys: APIKeys{
			OpenAI: getEnv("OPENAI_API_KEY", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "openai"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "text-embedding-3-large"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			LLMProvider:       getEnv("LLM_PROVIDER", "openai"),
			LLMModel:          getEnv("LLM_MODEL", "gpt-4-turbo"),
			TopK:              getEnvAsInt("RETRIEVER_TOP_K", 3),
			// Index cache follows the FAQ cache window. Set to 0 to
			// rebuild the index on every request.
			IndexCacheTTL: time.Duration(getEnvAsInt("INDEX_CACHE_TTL_SECONDS", 600)) * time.Second,
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
