package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port            int
	LogLevel        string
	LogFormat       string
	LogDir          string
	Environment     string
	ServiceName     string
	Version         string
	APIKey          string // When empty the API is open
	TrustedProxies  []string
	PricesFile      string
	CacheSize       int
	CacheTTL        time.Duration
	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:       getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:          getEnv(EnvLogDir, ""),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:     getEnv(EnvServiceName, DefaultServiceName),
		Version:         getEnv(EnvVersion, DefaultVersion),
		APIKey:          getEnv(EnvAPIKey, ""),
		TrustedProxies:  splitList(getEnv(EnvTrustedProxies, "")),
		PricesFile:      getEnv(EnvPricesFile, ConfigPathCrystalPrices),
		CacheSize:       getEnvAsInt(EnvCacheSize, DefaultCacheSize),
		CacheTTL:        getEnvAsDuration(EnvCacheTTL, 10*time.Minute),
		ShutdownTimeout: getEnvAsDuration(EnvShutdownTimeout, 10*time.Second),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT value: %d out of range", port)
	}
	cfg.Port = port

	if cfg.CacheSize < 0 {
		cfg.CacheSize = 0
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
