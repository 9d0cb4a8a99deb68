package env

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file. ENV_PATH overrides
// the default location when set.
func LoadDotEnv(defaultPath string) error {
	envPath := defaultPath
	if os.Getenv("ENV_PATH") != "" {
		envPath = os.Getenv("ENV_PATH")
	}

	return godotenv.Load(envPath)
}
