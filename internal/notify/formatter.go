package notify

import (
	"github.com/manav03panchal/remindme/internal/model"
)

// Supported webhook types.
const (
	WebhookTypeDiscord = "discord"
	WebhookTypeSlack   = "slack"
	WebhookTypeTeams   = "teams"
	WebhookTypeGeneric = "generic"
)

// Formatter formats notifications for a specific webhook type.
type Formatter interface {
	// Format converts a notification into the webhook-specific payload.
	Format(n *model.Notification) ([]byte, error)

	// ContentType returns the HTTP Content-Type for the payload.
	ContentType() string
}

// GetFormatter returns the appropriate formatter for a webhook type.
func GetFormatter(webhookType string) Formatter {
	switch webhookType {
	case WebhookTypeDiscord:
		return &DiscordFormatter{}
	case WebhookTypeSlack:
		return &SlackFormatter{}
	case WebhookTypeTeams:
		return &TeamsFormatter{}
	case WebhookTypeGeneric:
		return &GenericFormatter{}
	default:
		return &GenericFormatter{}
	}
}
