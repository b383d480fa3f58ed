package discord

import "time"

// Friendly message constants for Discord responses
const (
	MsgNPCNotFound    = "👤 **NPC Not Found**\nMaybe check the spelling?"
	MsgCropNotFound   = "🌱 **Crop Not Found**\nMaybe check the spelling?"
	MsgNoResults      = "🔍 Nothing matched."
	MsgQueryTooShort  = "🔍 Search needs at least 2 characters."
	MsgAPIUnavailable = "🛠️ **Valley data is unavailable**\nTry again in a moment."
	MsgGenericError   = "❌ Something went wrong."
	MsgPong           = "Pong! 🏓"
	MsgPingAPIUp      = "Valley data API: online (%dms)"
	MsgPingAPIDown    = "Valley data API: unreachable"
)

// Embed colors
const (
	ColorCrops   = 0x2ecc71
	ColorFish    = 0x3498db
	ColorGifts   = 0xe91e63
	ColorBundles = 0xf39c12
	ColorSearch  = 0x9b59b6
)

// Discord embed limits
const (
	MaxEmbedFields      = 25
	MaxFieldValueLength = 1024
	MaxDescriptionLen   = 4096
)

// FooterValley is the standard embed footer
const FooterValley = "Valley Companion"

// Command option names
const (
	OptSeason   = "season"
	OptWeather  = "weather"
	OptLocation = "location"
	OptName     = "name"
	OptRoom     = "room"
	OptQuery    = "query"
)

// Seasons offered as option choices
var Seasons = []string{"Spring", "Summer", "Fall", "Winter"}

const (
	PathHealth           = "/health"
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"
	healthCheckTimeout   = 2 * time.Second
	commandTimeout       = 10 * time.Second
)

const (
	LogMsgBotRunning     = "Discord bot is now running"
	LogMsgCommandFailed  = "Command failed"
	LogMsgResponseFailed = "Failed to send response"
	LogMsgDeferFailed    = "Failed to send deferred response"
)
