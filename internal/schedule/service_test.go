package schedule

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cathodetv/cathode/internal/db"
	"github.com/cathodetv/cathode/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestService creates a service with a migrated test database
func setupTestService(t *testing.T) (*Service, *db.Repositories, func()) {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.db")
	database, err := db.New(tmpFile)
	require.NoError(t, err)

	sqlDB, err := database.GetSQLDB()
	require.NoError(t, err)
	err = db.RunMigrations(sqlDB, "file://../../migrations")
	require.NoError(t, err)

	repos := db.NewRepositories(database)
	service := NewService(repos)

	cleanup := func() {
		_ = database.Close()
	}

	return service, repos, cleanup
}

func createDailyChannel(t *testing.T, repos *db.Repositories, id string, slots []*models.ScheduleSlot) {
	t.Helper()
	ctx := context.Background()

	ch := models.NewChannel(id, "Channel "+id, models.ChannelTypeDailySlots, true)
	require.NoError(t, repos.Channels.Create(ctx, ch))
	require.NoError(t, repos.Slots.ReplaceForChannel(ctx, id, slots))
}

func TestNowPlayingAt_DailyChannelWithKnownDuration(t *testing.T) {
	service, repos, cleanup := setupTestService(t)
	defer cleanup()
	ctx := context.Background()

	media := models.NewMedia("movies/feature.mp4", "Feature Film", 10800)
	require.NoError(t, repos.Media.Create(ctx, media))

	createDailyChannel(t, repos, "3", []*models.ScheduleSlot{
		models.NewScheduleSlot("3", 0, "23:00", "01:00", "movies/feature.mp4"),
	})

	// Same-day portion
	answer, err := service.NowPlayingAt(ctx, "3", time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "movies/feature.mp4", answer.ContentID)
	assert.Equal(t, int64(1800), answer.OffsetSeconds)

	// Next-day portion of the same slot
	answer, err = service.NowPlayingAt(ctx, "3", time.Date(2024, 3, 16, 0, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(5400), answer.OffsetSeconds)

	// Past the window
	_, err = service.NowPlayingAt(ctx, "3", time.Date(2024, 3, 16, 2, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNoProgram)
}

func TestNowPlayingAt_UnprobedMediaFallsBackToWindow(t *testing.T) {
	service, repos, cleanup := setupTestService(t)
	defer cleanup()
	ctx := context.Background()

	createDailyChannel(t, repos, "5", []*models.ScheduleSlot{
		models.NewScheduleSlot("5", 0, "08:00", "09:00", "news.mp4"),
	})

	answer, err := service.NowPlayingAt(ctx, "5", time.Date(2024, 3, 15, 8, 15, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "news.mp4", answer.ContentID)
	assert.Equal(t, int64(900), answer.OffsetSeconds)
	assert.Equal(t, int64(3600), answer.Duration)
}

func TestNowPlayingAt_LoopingChannel(t *testing.T) {
	service, repos, cleanup := setupTestService(t)
	defer cleanup()
	ctx := context.Background()

	ch := models.NewChannel("7", "Reruns", models.ChannelTypeLoopingPlaylist, true)
	require.NoError(t, repos.Channels.Create(ctx, ch))

	mediaA := models.NewMedia("reruns/a.mp4", "Episode A", 100)
	mediaB := models.NewMedia("reruns/b.mp4", "Episode B", 50)
	require.NoError(t, repos.Media.Create(ctx, mediaA))
	require.NoError(t, repos.Media.Create(ctx, mediaB))
	require.NoError(t, repos.PlaylistItems.Create(ctx, models.NewPlaylistItem("7", mediaA.ID, 0)))
	require.NoError(t, repos.PlaylistItems.Create(ctx, models.NewPlaylistItem("7", mediaB.ID, 1)))

	answer, err := service.NowPlayingAt(ctx, "7", time.Unix(1000000125, 0).UTC())

	require.NoError(t, err)
	assert.Equal(t, "reruns/a.mp4", answer.ContentID)
	assert.Equal(t, "Episode A", answer.Title)
	assert.Equal(t, int64(75), answer.OffsetSeconds)
}

func TestNowPlayingAt_ChannelNotFound(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.NowPlayingAt(context.Background(), "missing", time.Now().UTC())

	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func TestNowPlayingAt_EmptyScheduleIsOffAirNotError(t *testing.T) {
	service, repos, cleanup := setupTestService(t)
	defer cleanup()
	ctx := context.Background()

	createDailyChannel(t, repos, "9", nil)

	_, err := service.NowPlayingAt(ctx, "9", time.Now().UTC())

	assert.ErrorIs(t, err, ErrNoProgram)
	assert.NotErrorIs(t, err, ErrChannelNotFound)
}

func TestNowPlayingAt_InactiveChannelStillResolves(t *testing.T) {
	service, repos, cleanup := setupTestService(t)
	defer cleanup()
	ctx := context.Background()

	ch := models.NewChannel("11", "Hidden", models.ChannelTypeDailySlots, false)
	require.NoError(t, repos.Channels.Create(ctx, ch))
	require.NoError(t, repos.Slots.ReplaceForChannel(ctx, "11", []*models.ScheduleSlot{
		models.NewScheduleSlot("11", 0, "00:00", "23:59:59", "allday.mp4"),
	}))

	answer, err := service.NowPlayingAt(ctx, "11", time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "allday.mp4", answer.ContentID)
}
