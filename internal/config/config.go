package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App Env
	Api ApiConfig
}

type Env struct {
	Environment string
	LogFilePath string
}

type ApiConfig struct {
	// BaseURL points at the essay-material API. All document, upload and
	// chat traffic goes through it; the client keeps no state of its own.
	BaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: Env{
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", "zhibi-tui.log"),
		},
		Api: ApiConfig{
			BaseURL: getEnv("ZHIBI_API_URL", "http://127.0.0.1:8000"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
