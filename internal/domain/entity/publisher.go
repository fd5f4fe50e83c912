package entity

import "time"

// Publisher configures the monthly roster post of a channel.
type Publisher struct {
	ID          int64
	ChannelID   int64
	PublishDay  int    // day of month, 1..28
	PublishTime string // HH:MM
	UTCOffset   string // +HH:MM, also used for day keys
	IsEnabled   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
