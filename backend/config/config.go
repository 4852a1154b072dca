package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir      string
	SQLitePath   string
	JWTSecret    string
	ServerPort   string
	OpenAIAPIKey string
	AllowOrigins string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DataDir:      getEnv("DATA_DIR", "."),
		SQLitePath:   getEnv("SQLITE_PATH", "zyra.db"),
		JWTSecret:    getEnv("JWT_SECRET", "secret"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		AllowOrigins: getEnv("ALLOW_ORIGINS", "*"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
