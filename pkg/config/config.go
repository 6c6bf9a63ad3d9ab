package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Anthropic  AnthropicConfig
	Embeddings EmbeddingsConfig
	RAG        RAGConfig
	Logger     LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AnthropicConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

type EmbeddingsConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type RAGConfig struct {
	TopK               int
	InteractionTimeout time.Duration
}

func Load() (*Config, error) {
	// Try to load .env from the working directory or the project root; when
	// none is found plain environment variables are used (Docker/K8s).
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	llmTimeout, _ := strconv.Atoi(getEnv("ANTHROPIC_TIMEOUT", "60"))
	llmMaxTokens, _ := strconv.Atoi(getEnv("ANTHROPIC_MAX_TOKENS", "500"))
	llmTemperature, _ := strconv.ParseFloat(getEnv("ANTHROPIC_TEMPERATURE", "0.7"), 64)
	embTimeout, _ := strconv.Atoi(getEnv("EMBEDDINGS_TIMEOUT", "30"))
	ragTopK, _ := strconv.Atoi(getEnv("RAG_TOP_K", "5"))
	interactionTimeout, _ := strconv.Atoi(getEnv("RAG_INTERACTION_TIMEOUT", "10"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "fin_advisor"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Anthropic: AnthropicConfig{
			APIKey:      getEnv("ANTHROPIC_API_KEY", ""),
			Model:       getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
			MaxTokens:   llmMaxTokens,
			Temperature: llmTemperature,
			Timeout:     time.Duration(llmTimeout) * time.Second,
		},
		Embeddings: EmbeddingsConfig{
			APIKey:  getEnv("EMBEDDINGS_API_KEY", ""),
			BaseURL: getEnv("EMBEDDINGS_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("EMBEDDINGS_MODEL", "text-embedding-3-small"),
			Timeout: time.Duration(embTimeout) * time.Second,
		},
		RAG: RAGConfig{
			TopK:               ragTopK,
			InteractionTimeout: time.Duration(interactionTimeout) * time.Second,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
