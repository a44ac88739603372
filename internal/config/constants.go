package config

// Environment variable names
const (
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvLogDir          = "LOG_DIR"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvAPIKey          = "API_KEY"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
	EnvPricesFile      = "PRICES_FILE"
	EnvCacheSize       = "CACHE_SIZE"
	EnvCacheTTL        = "CACHE_TTL"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
	EnvSchemaVersion   = "ENV_SCHEMA_VERSION"

	EnvDiscordToken       = "DISCORD_TOKEN"
	EnvDiscordAppID       = "DISCORD_APP_ID"
	EnvDiscordGuildID     = "DISCORD_GUILD_ID"
	EnvDiscordForceUpdate = "DISCORD_FORCE_COMMAND_UPDATE"
	EnvDiscordHealthPort  = "DISCORD_HEALTH_PORT"
	EnvAPIURL             = "API_URL"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "gla-tools"
	DefaultVersion     = "dev"
	DefaultCacheSize   = 256
	DefaultAPIURL      = "http://localhost:8080"

	DefaultDiscordHealthPort = 8082

	// Configuration file paths
	ConfigPathCrystalPrices = "configs/crystal_prices.yaml"
)

// Example values shipped in .env.example
const (
	ExampleAPIKey = "generate_with_openssl_rand_hex_32"
)
