package entity

import "time"

// Channel is the Slack channel that owns a roster.
type Channel struct {
	ID               int64
	SlackChannelID   string
	SlackChannelName string
	SlackTeamID      string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
