package schedule

import (
	"sort"

	"github.com/cathodetv/cathode/internal/logger"
)

// ResolveSlots normalizes raw slot definitions into a time-sorted list of
// resolvable windows, reconciling each authored slot length against the
// real content duration.
//
// Malformed entries (unparseable times, zero-length windows) are dropped
// with a warning so one bad edit never blanks the channel; a schedule with
// nothing resolvable yields an empty list. The sort is stable, preserving
// authoring order between slots that share a start time.
func ResolveSlots(slots []SlotDef, lookup DurationLookup) []ResolvedSlot {
	resolved := make([]ResolvedSlot, 0, len(slots))

	for _, def := range slots {
		start, err := ParseTimeOfDay(def.StartTime)
		if err != nil {
			logger.Log.Warn().
				Str("content_id", def.ContentID).
				Str("start_time", def.StartTime).
				Msg("Dropping slot with unparseable start time")
			continue
		}

		end, err := ParseTimeOfDay(def.EndTime)
		if err != nil {
			logger.Log.Warn().
				Str("content_id", def.ContentID).
				Str("end_time", def.EndTime).
				Msg("Dropping slot with unparseable end time")
			continue
		}

		if start == end {
			logger.Log.Warn().
				Str("content_id", def.ContentID).
				Str("start_time", def.StartTime).
				Msg("Dropping zero-length slot")
			continue
		}

		window := WindowSeconds(start, end)

		// Unknown or unprobed durations fall back to the authored window
		// so playback still has a sane length.
		content, ok := lookup(def.ContentID)
		if !ok || content <= 0 {
			content = window
		}

		effective := content
		if effective > window {
			effective = window
		}
		if effective < 1 {
			effective = 1
		}

		resolved = append(resolved, ResolvedSlot{
			ContentID:        def.ContentID,
			Title:            slotTitle(def),
			StartSecond:      start,
			WindowSeconds:    window,
			EffectiveSeconds: effective,
			ContentSeconds:   content,
			CrossesMidnight:  end <= start,
		})
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].StartSecond < resolved[j].StartSecond
	})

	return resolved
}

// slotTitle returns the display title for a slot, falling back to the
// content id when no override was authored.
func slotTitle(def SlotDef) string {
	if def.Title != "" {
		return def.Title
	}
	return def.ContentID
}
