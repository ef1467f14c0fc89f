package schedule

import (
	"time"

	"github.com/cathodetv/cathode/internal/models"
)

// SlotDef is one raw daily appointment as authored: start/end time-of-day
// strings, the content to play, and an optional display title override.
type SlotDef struct {
	StartTime string
	EndTime   string
	ContentID string
	Title     string
}

// PlaylistEntry is one item of a looping playlist with its authoritative
// duration. Durations are fixed at snapshot build time and never re-probed
// during resolution.
type PlaylistEntry struct {
	ContentID string
	Title     string
	Duration  int64 // seconds
}

// Snapshot is one channel's complete scheduling state, captured immutably
// for a single resolve call. Exactly one of Slots or Playlist is
// meaningful, selected by Type.
type Snapshot struct {
	ChannelID string
	Type      models.ChannelType
	Slots     []SlotDef
	Playlist  []PlaylistEntry
}

// DurationLookup reports the known duration in seconds for a content id.
// The second return is false when the duration is unknown; callers fall
// back to the scheduled slot window. Implementations are read-only maps
// captured alongside the snapshot.
type DurationLookup func(contentID string) (int64, bool)

// ResolvedSlot is a normalized, resolvable slot window derived from a
// SlotDef. Computed fresh on every resolve and never persisted.
type ResolvedSlot struct {
	ContentID string
	Title     string

	// StartSecond is the slot's start as seconds since midnight.
	StartSecond int64

	// WindowSeconds is the authored slot length, midnight-normalized.
	WindowSeconds int64

	// EffectiveSeconds is the playable window: the lesser of the authored
	// window and the real content length, floored at one second.
	EffectiveSeconds int64

	// ContentSeconds is the content's own total length, falling back to
	// the authored window when the real duration is unknown.
	ContentSeconds int64

	// CrossesMidnight is set when the authored end time is at or before
	// the start time.
	CrossesMidnight bool
}

// NowPlaying is the answer handed back to callers: what is on, how far
// into it playback is, and when the current window ends.
type NowPlaying struct {
	ContentID     string    `json:"content_id"`
	Title         string    `json:"title"`
	OffsetSeconds int64     `json:"offset_seconds"`
	Duration      int64     `json:"duration_seconds"`
	StartedAt     time.Time `json:"started_at"`
	EndsAt        time.Time `json:"ends_at"`
}
