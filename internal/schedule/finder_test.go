package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// secOfDay converts "HH:MM:SS" to seconds for test readability
func secOfDay(t *testing.T, s string) int64 {
	t.Helper()
	sec, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return sec
}

func TestFindActive_SimpleSlot(t *testing.T) {
	resolved := ResolveSlots([]SlotDef{
		{StartTime: "08:00", EndTime: "09:00", ContentID: "news.mp4"},
	}, noDurations)

	slot, offset, ok := FindActive(resolved, secOfDay(t, "08:15:00"))

	require.True(t, ok)
	assert.Equal(t, "news.mp4", slot.ContentID)
	assert.Equal(t, int64(900), offset)
}

func TestFindActive_NoProgramMidGap(t *testing.T) {
	resolved := ResolveSlots([]SlotDef{
		{StartTime: "08:00", EndTime: "09:00", ContentID: "news.mp4"},
		{StartTime: "12:00", EndTime: "13:00", ContentID: "lunch.mp4"},
	}, noDurations)

	_, _, ok := FindActive(resolved, secOfDay(t, "10:00:00"))
	assert.False(t, ok)
}

func TestFindActive_MidnightWrap(t *testing.T) {
	// Scheduled 23:00-01:00 (2h window), media is 3h, so the effective
	// window is the full 2h and genuinely crosses midnight.
	resolved := ResolveSlots([]SlotDef{
		{StartTime: "23:00", EndTime: "01:00", ContentID: "movie.mp4"},
	}, durationTable(map[string]int64{"movie.mp4": 10800}))

	slot, offset, ok := FindActive(resolved, secOfDay(t, "23:30:00"))
	require.True(t, ok)
	assert.Equal(t, "movie.mp4", slot.ContentID)
	assert.Equal(t, int64(1800), offset)

	slot, offset, ok = FindActive(resolved, secOfDay(t, "00:30:00"))
	require.True(t, ok)
	assert.Equal(t, "movie.mp4", slot.ContentID)
	assert.Equal(t, int64(5400), offset)

	_, _, ok = FindActive(resolved, secOfDay(t, "02:00:00"))
	assert.False(t, ok)
}

func TestFindActive_WrapSlotShortenedByMediaLength(t *testing.T) {
	// Scheduled 23:00-01:00 but the media is only 30 minutes: the
	// playable window ends at 23:30, before midnight, so the slot behaves
	// like a same-day slot.
	resolved := ResolveSlots([]SlotDef{
		{StartTime: "23:00", EndTime: "01:00", ContentID: "short.mp4"},
	}, durationTable(map[string]int64{"short.mp4": 1800}))

	slot, offset, ok := FindActive(resolved, secOfDay(t, "23:15:00"))
	require.True(t, ok)
	assert.Equal(t, "short.mp4", slot.ContentID)
	assert.Equal(t, int64(900), offset)

	_, _, ok = FindActive(resolved, secOfDay(t, "23:45:00"))
	assert.False(t, ok)

	_, _, ok = FindActive(resolved, secOfDay(t, "00:15:00"))
	assert.False(t, ok)
}

func TestFindActive_WrapSlotEndingExactlyAtMidnight(t *testing.T) {
	resolved := ResolveSlots([]SlotDef{
		{StartTime: "23:00", EndTime: "00:00", ContentID: "late.mp4"},
	}, noDurations)

	slot, offset, ok := FindActive(resolved, secOfDay(t, "23:59:59"))
	require.True(t, ok)
	assert.Equal(t, "late.mp4", slot.ContentID)
	assert.Equal(t, int64(3599), offset)

	// The next-day portion is empty
	_, _, ok = FindActive(resolved, secOfDay(t, "00:00:00"))
	assert.False(t, ok)
}

func TestFindActive_OverlappingSlotsFirstMatchWins(t *testing.T) {
	resolved := ResolveSlots([]SlotDef{
		{StartTime: "09:10", EndTime: "10:10", ContentID: "b.mp4"},
		{StartTime: "09:00", EndTime: "10:00", ContentID: "a.mp4"},
	}, noDurations)

	slot, offset, ok := FindActive(resolved, secOfDay(t, "09:20:00"))

	require.True(t, ok)
	assert.Equal(t, "a.mp4", slot.ContentID)
	assert.Equal(t, int64(1200), offset)
}

func TestFindActive_OffsetAlwaysWithinEffectiveDuration(t *testing.T) {
	resolved := ResolveSlots([]SlotDef{
		{StartTime: "00:00", EndTime: "23:59:59", ContentID: "marathon.mp4"},
	}, noDurations)

	for _, sec := range []int64{0, 1, 43200, 86398} {
		slot, offset, ok := FindActive(resolved, sec)
		require.True(t, ok, "second %d", sec)
		assert.GreaterOrEqual(t, offset, int64(0))
		assert.Less(t, offset, slot.EffectiveSeconds)
	}
}

func TestFindActive_ExactSlotEndIsNotActive(t *testing.T) {
	resolved := ResolveSlots([]SlotDef{
		{StartTime: "08:00", EndTime: "09:00", ContentID: "news.mp4"},
	}, noDurations)

	_, _, ok := FindActive(resolved, secOfDay(t, "09:00:00"))
	assert.False(t, ok)
}

func TestFindActive_EmptySchedule(t *testing.T) {
	_, _, ok := FindActive(nil, 0)
	assert.False(t, ok)
}
