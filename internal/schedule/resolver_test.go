package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noDurations is a lookup that knows nothing
func noDurations(string) (int64, bool) { return 0, false }

// durationTable builds a lookup from a fixed map
func durationTable(durations map[string]int64) DurationLookup {
	return func(contentID string) (int64, bool) {
		d, ok := durations[contentID]
		return d, ok
	}
}

func TestResolveSlots_FallbackToScheduledWindow(t *testing.T) {
	slots := []SlotDef{
		{StartTime: "10:00", EndTime: "10:30", ContentID: "news.mp4"},
	}

	resolved := ResolveSlots(slots, noDurations)

	require.Len(t, resolved, 1)
	assert.Equal(t, int64(1800), resolved[0].WindowSeconds)
	assert.Equal(t, int64(1800), resolved[0].EffectiveSeconds)
	assert.Equal(t, int64(1800), resolved[0].ContentSeconds)
	assert.False(t, resolved[0].CrossesMidnight)
}

func TestResolveSlots_EffectiveDurationIsMinOfMediaAndWindow(t *testing.T) {
	slots := []SlotDef{
		{StartTime: "08:00", EndTime: "09:00", ContentID: "short.mp4"},
		{StartTime: "09:00", EndTime: "10:00", ContentID: "long.mp4"},
	}
	lookup := durationTable(map[string]int64{
		"short.mp4": 1200,  // shorter than the hour slot
		"long.mp4":  10800, // longer than the hour slot
	})

	resolved := ResolveSlots(slots, lookup)

	require.Len(t, resolved, 2)
	assert.Equal(t, int64(1200), resolved[0].EffectiveSeconds)
	assert.Equal(t, int64(1200), resolved[0].ContentSeconds)
	assert.Equal(t, int64(3600), resolved[1].EffectiveSeconds)
	assert.Equal(t, int64(10800), resolved[1].ContentSeconds)
}

func TestResolveSlots_DropsMalformedEntries(t *testing.T) {
	slots := []SlotDef{
		{StartTime: "bogus", EndTime: "09:00", ContentID: "a.mp4"},
		{StartTime: "09:00", EndTime: "25:00", ContentID: "b.mp4"},
		{StartTime: "12:00", EndTime: "12:00", ContentID: "zero.mp4"},
		{StartTime: "10:00", EndTime: "11:00", ContentID: "good.mp4"},
	}

	resolved := ResolveSlots(slots, noDurations)

	require.Len(t, resolved, 1)
	assert.Equal(t, "good.mp4", resolved[0].ContentID)
}

func TestResolveSlots_EmptyWhenNothingResolvable(t *testing.T) {
	slots := []SlotDef{
		{StartTime: "x", EndTime: "y", ContentID: "a.mp4"},
	}

	assert.Empty(t, ResolveSlots(slots, noDurations))
	assert.Empty(t, ResolveSlots(nil, noDurations))
}

func TestResolveSlots_SortsByStartPreservingAuthoringOrderOnTies(t *testing.T) {
	slots := []SlotDef{
		{StartTime: "12:00", EndTime: "13:00", ContentID: "noon-first.mp4"},
		{StartTime: "06:00", EndTime: "07:00", ContentID: "morning.mp4"},
		{StartTime: "12:00", EndTime: "12:30", ContentID: "noon-second.mp4"},
	}

	resolved := ResolveSlots(slots, noDurations)

	require.Len(t, resolved, 3)
	assert.Equal(t, "morning.mp4", resolved[0].ContentID)
	assert.Equal(t, "noon-first.mp4", resolved[1].ContentID)
	assert.Equal(t, "noon-second.mp4", resolved[2].ContentID)
}

func TestResolveSlots_MidnightCrossingWindow(t *testing.T) {
	slots := []SlotDef{
		{StartTime: "23:00", EndTime: "01:00", ContentID: "late.mp4"},
	}

	resolved := ResolveSlots(slots, noDurations)

	require.Len(t, resolved, 1)
	assert.True(t, resolved[0].CrossesMidnight)
	assert.Equal(t, int64(7200), resolved[0].WindowSeconds)
}

func TestResolveSlots_EffectiveDurationFloorsAtOneSecond(t *testing.T) {
	slots := []SlotDef{
		{StartTime: "10:00:00", EndTime: "10:00:01", ContentID: "blip.mp4"},
	}

	resolved := ResolveSlots(slots, noDurations)

	require.Len(t, resolved, 1)
	assert.GreaterOrEqual(t, resolved[0].EffectiveSeconds, int64(1))
}

func TestResolveSlots_TitleOverride(t *testing.T) {
	slots := []SlotDef{
		{StartTime: "08:00", EndTime: "09:00", ContentID: "news.mp4", Title: "Morning News"},
		{StartTime: "09:00", EndTime: "10:00", ContentID: "weather.mp4"},
	}

	resolved := ResolveSlots(slots, noDurations)

	require.Len(t, resolved, 2)
	assert.Equal(t, "Morning News", resolved[0].Title)
	assert.Equal(t, "weather.mp4", resolved[1].Title)
}
