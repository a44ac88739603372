package config

import (
	"errors"

	"github.com/joho/godotenv"
)

// Discord holds the bot's configuration
type Discord struct {
	Token              string
	AppID              string
	GuildID            string // Register commands on one guild instead of globally
	APIURL             string
	APIKey             string
	HealthPort         int // 0 disables the bot's health endpoint
	ForceCommandUpdate bool
	LogLevel           string
	LogFormat          string
	LogDir             string
	Environment        string
	Version            string
}

// LoadDiscord loads the bot configuration. DISCORD_TOKEN and DISCORD_APP_ID are required.
func LoadDiscord() (*Discord, error) {
	_ = godotenv.Load()

	cfg := &Discord{
		Token:              getEnv(EnvDiscordToken, ""),
		AppID:              getEnv(EnvDiscordAppID, ""),
		GuildID:            getEnv(EnvDiscordGuildID, ""),
		APIURL:             getEnv(EnvAPIURL, DefaultAPIURL),
		APIKey:             getEnv(EnvAPIKey, ""),
		ForceCommandUpdate: getEnv(EnvDiscordForceUpdate, "") == "true",
		HealthPort:         getEnvAsInt(EnvDiscordHealthPort, DefaultDiscordHealthPort),
		LogLevel:           getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:          getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:             getEnv(EnvLogDir, ""),
		Environment:        getEnv(EnvEnvironment, DefaultEnvironment),
		Version:            getEnv(EnvVersion, DefaultVersion),
	}

	if cfg.Token == "" {
		return nil, errors.New("DISCORD_TOKEN is required")
	}
	if cfg.AppID == "" {
		return nil, errors.New("DISCORD_APP_ID is required")
	}
	return cfg, nil
}
