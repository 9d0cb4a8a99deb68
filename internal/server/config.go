package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/daye-lim/news-intel/pkg/config/env"
	"github.com/daye-lim/news-intel/pkg/utils"
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string

	// Provider credentials. Empty values switch the corresponding subsystem
	// to its designed fallback path, they are never an error.
	TavilyAPIKey string
	GeminiAPIKey string

	DataDir string
}

func LoadConfig() (*Config, error) {
	if err := env.LoadDotEnv("cmd/news_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	useHttp2Str := os.Getenv("USE_HTTP2")
	useHttp2 := useHttp2Str == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	var origins []string
	corsOriginsEnv := os.Getenv("CORS_ORIGINS")
	if corsOriginsEnv != "" {
		origins = utils.CompactStrings(strings.Split(corsOriginsEnv, ","))
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	return &Config{
		Port:         port,
		UseHttp2:     useHttp2,
		CorsOrigins:  origins,
		TavilyAPIKey: os.Getenv("TAVILY_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		DataDir:      dataDir,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
