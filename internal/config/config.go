package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Env             string
	Port            string
	ShutdownTimeout time.Duration

	// Logging
	LogLevel string

	// Database
	DB DBConfig

	// Universe seed file; empty selects the embedded demo universe
	UniverseFile string

	// Scoring
	FrontierPoints int
}

// DBConfig holds database configuration
type DBConfig struct {
	Driver   string // sqlite or postgres
	Path     string // sqlite file
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		LogLevel: getEnv("LOG_LEVEL", ""),

		// Database
		DB: DBConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Path:     getEnv("DB_PATH", "yemalin.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "yemalin"),
			Password: getEnv("DB_PASSWORD", "yemalin"),
			Name:     getEnv("DB_NAME", "yemalin"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		UniverseFile: getEnv("UNIVERSE_FILE", ""),
	}

	timeoutStr := getEnv("SHUTDOWN_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		log.Printf("Warning: invalid SHUTDOWN_TIMEOUT value '%s', falling back to 10s\n", timeoutStr)
		timeout = 10 * time.Second
	}
	config.ShutdownTimeout = timeout

	pointsStr := getEnv("FRONTIER_POINTS", "25")
	points, err := strconv.Atoi(pointsStr)
	if err != nil || points < 2 {
		log.Printf("Warning: invalid FRONTIER_POINTS value '%s', falling back to 25\n", pointsStr)
		points = 25
	}
	config.FrontierPoints = points

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
