// Env loader
package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/AbdurRehman-eng/soulsync-sub001/internal/logging"
)

type Config struct {
	AppEnv     string
	Port       string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSchema   string
	JWTSecret  string
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {
	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			logging.L().Info().Msg("loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			logging.L().Info().Msg("loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		Port:       getEnv("PORT", "8080"),
		DBHost:     getEnv("SOULSYNC_DB_HOST", "localhost"),
		DBPort:     getEnv("SOULSYNC_DB_PORT", "5432"),
		DBName:     getEnv("SOULSYNC_DB_DATABASE", "soulsync"),
		DBUser:     getEnv("SOULSYNC_DB_USERNAME", "postgres"),
		DBPassword: getEnv("SOULSYNC_DB_PASSWORD", ""),
		DBSchema:   getEnv("SOULSYNC_DB_SCHEMA", "public"),
		JWTSecret:  getEnv("JWT_SECRET", ""),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
