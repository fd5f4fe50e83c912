package entity

import "time"

type RequestKind string

const (
	RequestPreferred RequestKind = "preferred"
	RequestOff       RequestKind = "off"
)

func (k RequestKind) Valid() bool {
	return k == RequestPreferred || k == RequestOff
}

// DayRequest is a declared preferred or mandatory off day. An employee
// has at most one request per day.
type DayRequest struct {
	ID          int64
	EmployeeID  int64
	SlackUserID string
	Day         string
	Kind        RequestKind
	CreatedAt   time.Time
}
