package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

var validLogLevels = []string{"debug", "info", "warn", "warning", "error"}

// ValidateEnv checks values that would make the service misbehave. Unset
// variables are fine; they take defaults.
func ValidateEnv() error {
	if v, ok := os.LookupEnv(EnvSchemaVersion); ok && v != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, v)
	}

	var problems []string
	if v, ok := os.LookupEnv(EnvPort); ok {
		if _, err := strconv.Atoi(v); err != nil {
			problems = append(problems, fmt.Sprintf("%s=%q is not a number", EnvPort, v))
		}
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && !containsFold(validLogLevels, v) {
		problems = append(problems, fmt.Sprintf("%s=%q must be one of %s", EnvLogLevel, v, strings.Join(validLogLevels, ", ")))
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok && !containsFold([]string{"json", "text"}, v) {
		problems = append(problems, fmt.Sprintf("%s=%q must be json or text", EnvLogFormat, v))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid environment: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if apiKey == "" && os.Getenv(EnvEnvironment) == "prod" {
		warnings = append(warnings, "API_KEY is empty in prod - the API is open to anyone")
	}

	for _, key := range []string{EnvCacheSize} {
		if v, ok := os.LookupEnv(key); ok {
			if _, err := strconv.Atoi(v); err != nil {
				warnings = append(warnings, fmt.Sprintf("%s=%q is not a number - using the default", key, v))
			}
		}
	}
	for _, key := range []string{EnvCacheTTL, EnvShutdownTimeout} {
		if v, ok := os.LookupEnv(key); ok {
			if _, err := time.ParseDuration(v); err != nil {
				warnings = append(warnings, fmt.Sprintf("%s=%q is not a duration - using the default", key, v))
			}
		}
	}

	path := getEnv(EnvPricesFile, ConfigPathCrystalPrices)
	if _, err := os.Stat(path); err != nil {
		warnings = append(warnings, fmt.Sprintf("prices file %s not readable - crystal costs will default to zero", path))
	}

	return warnings, nil
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
