package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	RecordDBPath string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	JWTSecret    string
	ServerPort   string

	// Completion service (AI tutor). The API key is always supplied by the
	// user per request and is never read from configuration.
	CompletionURL       string
	CompletionModel     string
	CompletionMaxTokens int

	// "console" or "none"
	SpeechSynth string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		RecordDBPath:        getEnv("RECORD_DB_PATH", "data/records.db"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "vidya_bandhan"),
		JWTSecret:           getEnv("JWT_SECRET", "secret"),
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		CompletionURL:       getEnv("COMPLETION_URL", "https://api.openai.com/v1/chat/completions"),
		CompletionModel:     getEnv("COMPLETION_MODEL", "gpt-4o-mini"),
		CompletionMaxTokens: getEnvInt("COMPLETION_MAX_TOKENS", 600),
		SpeechSynth:         getEnv("SPEECH_SYNTH", "none"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
