package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBPath       string
	UploadsDir   string
	DescricaoMax int
}

// Load reads the .env file if present and falls back to defaults for
// anything not set in the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	return &Config{
		Port:         getEnv("PORT", "3000"),
		DBPath:       getEnv("DB_PATH", "catalogo.db"),
		UploadsDir:   getEnv("UPLOADS_DIR", "uploads"),
		DescricaoMax: getEnvInt("DESCRICAO_MAX_CARACTERES", 300),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value %q for %s, using default %d", value, key, fallback)
		return fallback
	}
	return n
}
