package entity

import "time"

// Employee is a roster member. SlackUserID is the identifier used in
// generated schedules.
type Employee struct {
	ID            int64
	ChannelID     int64
	SlackUserID   string
	SlackUserName string
	DisplayName   string
	WeekendOff    bool
	IsActive      bool
	JoinedAt      time.Time
}
