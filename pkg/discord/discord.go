package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// GetWebhookURL returns the webhook endpoint messages are posted to.
func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)
}

// SendEmbed posts a single embed built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	embed := Embed{
		Title:       options.Title,
		Description: truncate(options.Description, maxDescriptionLength),
		Color:       colorFor(options.Type),
		Timestamp:   ts.Format(time.RFC3339),
		Footer:      options.Footer,
		Fields:      options.Fields,
	}
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds:   []Embed{embed},
	})
}

// ReportBug posts an unexpected failure, typically from the recovery middleware.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       "Bug report",
		Description: fmt.Sprintf("```%s```", truncate(message, maxDescriptionLength-6)),
	})
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	_, status, err := d.client.Post(ctx, d.GetWebhookURL(), payload, nil)
	if err != nil {
		d.l.Errorf(ctx, "discord.send: %v", err)
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return fmt.Errorf("discord: unexpected status code: %d", status)
	}
	return nil
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
