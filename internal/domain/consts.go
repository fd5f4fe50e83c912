package domain

// Publisher defaults for a newly set up channel.
const (
	DefaultPublishDay  = 25
	DefaultPublishTime = "09:00"
	DefaultUTCOffset   = "+09:00"
	MaxPublishDay      = 28
)

// WeekdayShortNames maps time.Weekday to the label used in roster posts.
var WeekdayShortNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Config keys accepted by the config command.
const (
	ConfigPublishDay = "publish-day"
	ConfigTime       = "time"
	ConfigOffset     = "offset"
	ConfigShow       = "show"
)
