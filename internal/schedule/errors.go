package schedule

import "errors"

var (
	// ErrNoProgram is returned when nothing is scheduled at the queried
	// instant. This is the off-air state, not a failure: callers render a
	// neutral screen rather than an error indicator.
	ErrNoProgram = errors.New("no program scheduled")

	// ErrInvalidTimeOfDay is returned when an authored time string is not
	// a valid "HH:MM" or "HH:MM:SS" time of day.
	ErrInvalidTimeOfDay = errors.New("invalid time of day")

	// ErrUnknownChannelType is returned when a snapshot carries a channel
	// type the engine does not recognize.
	ErrUnknownChannelType = errors.New("unknown channel type")

	// ErrChannelNotFound is returned when a now-playing query names a
	// channel with no schedule document at all. Unlike ErrNoProgram this
	// is a usage error and surfaces as an error indicator.
	ErrChannelNotFound = errors.New("channel not found")
)

// IsNoProgram checks if the error is the off-air condition.
func IsNoProgram(err error) bool {
	return errors.Is(err, ErrNoProgram)
}
