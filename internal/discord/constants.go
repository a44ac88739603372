package discord

import "time"

// API paths
const (
	PathPlan         = "/api/v1/xp/plan"
	PathEstimate     = "/api/v1/crystals/estimate"
	PathTransferCost = "/api/v1/crystals/transfer-cost"
	PathHealthz      = "/healthz"
)

// HTTP headers sent to the API
const (
	HeaderAPIKey    = "X-API-Key"
	HeaderRequestID = "X-Request-ID"
)

// Client defaults
const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultMaxRetries     = 3
	DefaultRetryDelay     = 500 * time.Millisecond

	maxErrorBody = 4 << 10
)

// Command and option names
const (
	CmdPing     = "ping"
	CmdXP       = "xp"
	CmdCrystals = "cristais"
	CmdTransfer = "transferencia"

	OptStart    = "inicio"
	OptEnd      = "fim"
	OptTier     = "tier"
	OptSlot     = "slot"
	OptLevel    = "nivel"
	OptCeu      = "ceu"
	OptSabio    = "sabio"
	OptCarmesim = "carmesim"
	OptRadiante = "radiante"
)

// Embed colors
const (
	ColorInfo    = 0x3498db
	ColorSuccess = 0x2ecc71
	ColorCrystal = 0x9b59b6
	ColorGems    = 0xf1c40f
)

// Footer constants for standardized embed footers
const (
	FooterGLATools = "GLA Tools"
)

// Log messages
const (
	LogMsgRetrying         = "Retrying API request"
	LogMsgRequestFailed    = "API request failed"
	LogMsgServerError      = "Server error, will retry"
	LogMsgCommandFailed    = "Command failed"
	LogMsgRespondFailed    = "Failed to send response"
	LogMsgDeferFailed      = "Failed to send deferred response"
	LogMsgBotReady         = "Bot is ready"
	LogMsgBotRunning       = "Discord bot is now running"
	LogMsgCheckingCommands = "Checking Discord commands"
	LogMsgCommandsSame     = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated  = "Commands updated"
	LogMsgHealthServer     = "Starting bot health server"
	LogMsgHealthFailed     = "Bot health server failed"
)
