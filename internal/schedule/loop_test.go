package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loopPlaylist(durations ...int64) []PlaylistEntry {
	entries := make([]PlaylistEntry, len(durations))
	for i, d := range durations {
		entries[i] = PlaylistEntry{
			ContentID: string(rune('A' + i)),
			Duration:  d,
		}
	}
	return entries
}

func TestResolveLoop_FirstItemAtLoopStart(t *testing.T) {
	playlist := loopPlaylist(10, 20, 30)

	entry, offset, err := ResolveLoop(playlist, 0)

	require.NoError(t, err)
	assert.Equal(t, "A", entry.ContentID)
	assert.Equal(t, int64(0), offset)
}

func TestResolveLoop_WalksAccumulatedDurations(t *testing.T) {
	playlist := loopPlaylist(10, 20, 30)

	// Item boundaries: A ends at 10, B at 30, C at 60
	tests := []struct {
		position   int64
		wantItem   string
		wantOffset int64
	}{
		{0, "A", 0},
		{9, "A", 9},
		{10, "B", 0},
		{29, "B", 19},
		{30, "C", 0},
		{35, "C", 5},
		{59, "C", 29},
	}

	for _, tt := range tests {
		entry, offset, err := ResolveLoop(playlist, tt.position)
		require.NoError(t, err)
		assert.Equal(t, tt.wantItem, entry.ContentID, "position %d", tt.position)
		assert.Equal(t, tt.wantOffset, offset, "position %d", tt.position)
	}
}

func TestResolveLoop_PeriodicInTotalDuration(t *testing.T) {
	playlist := loopPlaylist(10, 20, 30)

	// Large epochs resolve identically to their position mod 60
	for _, base := range []int64{35, 5, 59} {
		wantEntry, wantOffset, err := ResolveLoop(playlist, base)
		require.NoError(t, err)

		for _, periods := range []int64{1, 1000, 16666} {
			entry, offset, err := ResolveLoop(playlist, base+periods*60)
			require.NoError(t, err)
			assert.Equal(t, wantEntry.ContentID, entry.ContentID)
			assert.Equal(t, wantOffset, offset)
		}
	}
}

func TestResolveLoop_EpochScenario(t *testing.T) {
	playlist := []PlaylistEntry{
		{ContentID: "A", Duration: 100},
		{ContentID: "B", Duration: 50},
	}

	// 1000000125 mod 150 = 75, which falls inside A (A ends at 100)
	entry, offset, err := ResolveLoop(playlist, 1000000125)

	require.NoError(t, err)
	assert.Equal(t, "A", entry.ContentID)
	assert.Equal(t, int64(75), offset)
}

func TestResolveLoop_SkipsNonPositiveDurations(t *testing.T) {
	playlist := []PlaylistEntry{
		{ContentID: "broken", Duration: 0},
		{ContentID: "negative", Duration: -5},
		{ContentID: "good", Duration: 60},
	}

	entry, offset, err := ResolveLoop(playlist, 30)

	require.NoError(t, err)
	assert.Equal(t, "good", entry.ContentID)
	assert.Equal(t, int64(30), offset)
}

func TestResolveLoop_EmptyPlaylist(t *testing.T) {
	_, _, err := ResolveLoop(nil, 100)
	assert.ErrorIs(t, err, ErrNoProgram)

	_, _, err = ResolveLoop([]PlaylistEntry{{ContentID: "x", Duration: 0}}, 100)
	assert.ErrorIs(t, err, ErrNoProgram)
}

func TestResolveLoop_OffsetAlwaysWithinItemDuration(t *testing.T) {
	playlist := loopPlaylist(7, 13, 5)

	for epoch := int64(0); epoch < 50; epoch++ {
		entry, offset, err := ResolveLoop(playlist, epoch)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, offset, int64(0))
		assert.Less(t, offset, entry.Duration)
	}
}
