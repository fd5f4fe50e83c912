package schedule

import (
	"errors"
	"fmt"
)

// Input errors abort a generation before any phase runs.
var (
	// ErrInvalidPeriod is returned when the period has no days.
	ErrInvalidPeriod = errors.New("invalid period: day count must be positive")

	// ErrDuplicateEmployee is returned when an identifier appears twice in the roster.
	ErrDuplicateEmployee = errors.New("duplicate employee in roster")

	// ErrInvalidDayKey is returned when a date string does not match DayKeyLayout.
	ErrInvalidDayKey = errors.New("invalid day key")

	// ErrInvalidOffset is returned when a UTC offset cannot be parsed.
	ErrInvalidOffset = errors.New("invalid UTC offset")

	// ErrPeriodTooLong is returned when a period exceeds MaxPeriodDays.
	// It wraps ErrInvalidPeriod.
	ErrPeriodTooLong = fmt.Errorf("%w: longer than %d days", ErrInvalidPeriod, MaxPeriodDays)

	// ErrRosterTooLarge is returned when a roster exceeds MaxRosterSize.
	ErrRosterTooLarge = fmt.Errorf("roster larger than %d employees", MaxRosterSize)
)

// Selection and quota errors.
var (
	// ErrEmptyCandidateSet is returned by Pick on an empty candidate list.
	// The engine checks for emptiness itself, so it never surfaces from Generate.
	ErrEmptyCandidateSet = errors.New("empty candidate set")

	// ErrQuotaShortfall is wrapped by Result.Err when any day missed a target.
	ErrQuotaShortfall = errors.New("quota shortfall")
)
