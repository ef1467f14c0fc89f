package schedule

import (
	"github.com/cathodetv/cathode/internal/logger"
)

// ResolveLoop resolves "now playing" for an eternally repeating playlist,
// synchronized purely by epoch time: position in the loop is the epoch
// second modulo the total playlist duration. That makes the computation a
// pure function of UTC time and playlist content, so every viewer and
// every stateless replica lands on the same item and offset with no stored
// "loop started at" reference.
//
// Entries with non-positive durations are dropped with a warning before
// the modulo; a playlist with no usable entries returns ErrNoProgram.
func ResolveLoop(playlist []PlaylistEntry, epochSeconds int64) (PlaylistEntry, int64, error) {
	usable := make([]PlaylistEntry, 0, len(playlist))
	var total int64
	for _, entry := range playlist {
		if entry.Duration <= 0 {
			logger.Log.Warn().
				Str("content_id", entry.ContentID).
				Int64("duration", entry.Duration).
				Msg("Dropping playlist entry with non-positive duration")
			continue
		}
		usable = append(usable, entry)
		total += entry.Duration
	}

	if total <= 0 {
		return PlaylistEntry{}, 0, ErrNoProgram
	}

	position := epochSeconds % total
	if position < 0 {
		position += total
	}

	var accumulated int64
	for _, entry := range usable {
		if position < accumulated+entry.Duration {
			return entry, position - accumulated, nil
		}
		accumulated += entry.Duration
	}

	// Unreachable: position < total and the walk covers [0, total).
	return usable[len(usable)-1], usable[len(usable)-1].Duration - 1, nil
}
