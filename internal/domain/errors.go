package domain

import "errors"

// Roster errors returned by the services. Handlers turn them into user
// facing messages.
var (
	// ErrChannelNotFound is returned when a channel ID has no row.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrEmployeeNotFound is returned when a user is not in the channel roster.
	ErrEmployeeNotFound = errors.New("employee not found in roster")

	// ErrEmployeeExists is returned when adding a user twice.
	ErrEmployeeExists = errors.New("employee is already in the roster")

	// ErrEmptyRoster is returned when generating for a channel with no employees.
	ErrEmptyRoster = errors.New("roster has no active employees")

	// ErrInvalidDay is returned for dates that are not YYYY-MM-DD.
	ErrInvalidDay = errors.New("invalid day, use YYYY-MM-DD")

	// ErrInvalidConfig is returned for unknown or malformed config values.
	ErrInvalidConfig = errors.New("invalid configuration")
)
