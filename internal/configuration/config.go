package configuration

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const APIKeyHeader = "X-API-Key"

type MongoConfig struct {
	Uri             string
	Database        string
	UsersCollection string
}

type ServerConfig struct {
	AppPort int
	APIKey  string
}

type Config struct {
	Mongo  MongoConfig
	Server ServerConfig
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is honored when present. API_KEY and MONGO_DETAILS are
// required; everything else has a default.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable is required")
	}

	mongoURI := os.Getenv("MONGO_DETAILS")
	if mongoURI == "" {
		return nil, fmt.Errorf("MONGO_DETAILS environment variable is required")
	}

	config := &Config{
		Mongo: MongoConfig{
			Uri:             mongoURI,
			Database:        getEnv("MONGO_DATABASE", "bootcamp_db"),
			UsersCollection: getEnv("MONGO_USERS_COLLECTION", "users"),
		},
		Server: ServerConfig{
			AppPort: getEnvInt("PORT", 8080),
			APIKey:  apiKey,
		},
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)
		if err != nil {
			return fallback
		}
		return num
	}
	return fallback
}
