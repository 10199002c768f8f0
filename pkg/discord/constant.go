package discord

import (
	"errors"
	"time"
)

const (
	webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"

	// maxDescriptionLength is the Discord limit for embed descriptions.
	maxDescriptionLength = 4096

	colorInfo    = 0x17A2B8
	colorSuccess = 0x28A745
	colorWarning = 0xFFC107
	colorError   = 0xDC3545
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// DefaultConfig returns the default Discord configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      1,
		RetryDelay:      500 * time.Millisecond,
		DefaultUsername: "diagnosis-srv",
	}
}
