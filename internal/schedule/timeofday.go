// Package schedule implements the pure resolution engine that answers
// "what is playing right now, and at what offset?" for a channel. Every
// function here is a side-effect-free function of the schedule snapshot
// and the supplied clock reading, so any number of viewers resolving the
// same channel at the same instant converge on an identical answer with
// no coordination.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SecondsPerDay is the number of seconds in one broadcast day.
const SecondsPerDay = 86400

// ParseTimeOfDay parses an authored time-of-day string in "HH:MM" or
// "HH:MM:SS" form into seconds since midnight (0-86399).
func ParseTimeOfDay(s string) (int64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	fields := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
		}
		fields[i] = n
	}

	hours, minutes, seconds := fields[0], fields[1], fields[2]
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	return int64(hours)*3600 + int64(minutes)*60 + int64(seconds), nil
}

// WindowSeconds returns the scheduled length of a slot window.
// A slot whose end is at or before its start crosses midnight, so its
// window runs to midnight and continues into the next day.
func WindowSeconds(start, end int64) int64 {
	if end > start {
		return end - start
	}
	return (SecondsPerDay - start) + end
}

// SecondOfDay returns the second-of-day for t in UTC.
//
// All slot comparisons use UTC as the single reference frame: authored
// slot times and the server clock are interpreted identically, so every
// viewer of a channel sees the same program regardless of their own
// timezone.
func SecondOfDay(t time.Time) int64 {
	utc := t.UTC()
	return int64(utc.Hour())*3600 + int64(utc.Minute())*60 + int64(utc.Second())
}
