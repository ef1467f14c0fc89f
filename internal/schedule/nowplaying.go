package schedule

import (
	"fmt"
	"time"

	"github.com/cathodetv/cathode/internal/models"
)

// ResolveNowPlaying computes the complete now-playing answer for one
// channel snapshot at one instant. It dispatches on the channel type,
// resolves the active item and offset, and assembles the absolute
// started-at/ends-at timestamps clients use to schedule their next poll.
//
// The "now" argument is read once by the caller and threaded through the
// whole computation, so the offset math inside a single answer is always
// self-consistent. Calling twice with the same snapshot and now yields an
// identical answer.
//
// Returns ErrNoProgram when nothing is on air (possible only for
// daily-slots channels and for playlists with no usable entries).
func ResolveNowPlaying(snap Snapshot, lookup DurationLookup, now time.Time) (*NowPlaying, error) {
	switch snap.Type {
	case models.ChannelTypeDailySlots:
		return resolveDailySlots(snap, lookup, now)
	case models.ChannelTypeLoopingPlaylist:
		return resolveLoopingPlaylist(snap, now)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannelType, snap.Type)
	}
}

// resolveDailySlots answers for a fixed daily time-slot channel.
func resolveDailySlots(snap Snapshot, lookup DurationLookup, now time.Time) (*NowPlaying, error) {
	resolved := ResolveSlots(snap.Slots, lookup)
	if len(resolved) == 0 {
		return nil, ErrNoProgram
	}

	slot, offset, ok := FindActive(resolved, SecondOfDay(now))
	if !ok {
		// Mid-gap viewers see the off-air state; the engine never
		// pre-starts a future slot.
		return nil, ErrNoProgram
	}

	return assemble(slot.ContentID, slot.Title, offset, slot.EffectiveSeconds, slot.ContentSeconds, now), nil
}

// resolveLoopingPlaylist answers for an epoch-synchronized looping channel.
func resolveLoopingPlaylist(snap Snapshot, now time.Time) (*NowPlaying, error) {
	entry, offset, err := ResolveLoop(snap.Playlist, now.Unix())
	if err != nil {
		return nil, err
	}

	title := entry.Title
	if title == "" {
		title = entry.ContentID
	}

	return assemble(entry.ContentID, title, offset, entry.Duration, entry.Duration, now), nil
}

// assemble builds the final answer from an active item and offset.
// EndsAt marks the end of the current visible window, so clients can
// re-query exactly at the transition instead of polling blindly.
func assemble(contentID, title string, offset, effective, contentSeconds int64, now time.Time) *NowPlaying {
	return &NowPlaying{
		ContentID:     contentID,
		Title:         title,
		OffsetSeconds: offset,
		Duration:      contentSeconds,
		StartedAt:     now.Add(-time.Duration(offset) * time.Second),
		EndsAt:        now.Add(time.Duration(effective-offset) * time.Second),
	}
}
