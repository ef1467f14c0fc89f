package schedule

// FindActive locates the slot playing at the given second of day, along
// with the playback offset into it.
//
// Slots are checked in sorted order and the first match wins; authors are
// expected to avoid overlaps, and the engine does not attempt any conflict
// resolution beyond that. There are three cases per slot:
//
//   - a slot that stays within one day is active when secondOfDay falls
//     inside [start, start+effective)
//   - a midnight-crossing slot whose effective window really extends past
//     midnight is active both in its same-day tail and in its next-day
//     head, with the offset continuing across the wrap
//   - a midnight-crossing slot whose effective window ends before midnight
//     (the media is shorter than the authored window) behaves like a
//     same-day slot
//
// The returned offset is clamped to [0, effective-1] so callers never seek
// to the exact end of a clip.
func FindActive(resolved []ResolvedSlot, secondOfDay int64) (ResolvedSlot, int64, bool) {
	for _, slot := range resolved {
		end := slot.StartSecond + slot.EffectiveSeconds

		if slot.CrossesMidnight && end >= SecondsPerDay {
			// Effective window genuinely spans midnight.
			wrappedEnd := end % SecondsPerDay
			switch {
			case secondOfDay >= slot.StartSecond:
				return slot, clampOffset(secondOfDay-slot.StartSecond, slot.EffectiveSeconds), true
			case secondOfDay < wrappedEnd:
				return slot, clampOffset((SecondsPerDay-slot.StartSecond)+secondOfDay, slot.EffectiveSeconds), true
			}
			continue
		}

		// Same-day window, including scheduled-past-midnight slots whose
		// playable window was shortened to end before midnight.
		if secondOfDay >= slot.StartSecond && secondOfDay < end {
			return slot, clampOffset(secondOfDay-slot.StartSecond, slot.EffectiveSeconds), true
		}
	}

	return ResolvedSlot{}, 0, false
}

// clampOffset bounds an offset to [0, effective-1].
func clampOffset(offset, effective int64) int64 {
	if offset < 0 {
		return 0
	}
	if offset > effective-1 {
		return effective - 1
	}
	return offset
}
