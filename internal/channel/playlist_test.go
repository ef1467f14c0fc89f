package channel

import (
	"context"
	"testing"

	"github.com/cathodetv/cathode/internal/db"
	"github.com/cathodetv/cathode/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLoopingChannel(t *testing.T) (*PlaylistService, *db.Repositories, string, func()) {
	t.Helper()

	repos, database, cleanup := setupTestRepos(t)
	service := NewPlaylistService(database, repos)

	ctx := context.Background()
	_, err := NewChannelService(repos).CreateChannel(ctx, "7", "Reruns", models.ChannelTypeLoopingPlaylist, true)
	require.NoError(t, err)

	return service, repos, "7", cleanup
}

func createCatalogEntry(t *testing.T, repos *db.Repositories, path string, duration int64) *models.Media {
	t.Helper()
	media := models.NewMedia(path, path, duration)
	require.NoError(t, repos.Media.Create(context.Background(), media))
	return media
}

func TestAddToPlaylist_AppendsAndShifts(t *testing.T) {
	service, repos, channelID, cleanup := setupLoopingChannel(t)
	defer cleanup()
	ctx := context.Background()

	a := createCatalogEntry(t, repos, "a.mp4", 100)
	b := createCatalogEntry(t, repos, "b.mp4", 50)
	c := createCatalogEntry(t, repos, "c.mp4", 25)

	_, err := service.AddToPlaylist(ctx, channelID, a.ID, 0)
	require.NoError(t, err)
	_, err = service.AddToPlaylist(ctx, channelID, b.ID, 1)
	require.NoError(t, err)

	// Insert at the front shifts the others down
	_, err = service.AddToPlaylist(ctx, channelID, c.ID, 0)
	require.NoError(t, err)

	items, err := service.GetPlaylist(ctx, channelID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, c.ID, items[0].MediaID)
	assert.Equal(t, a.ID, items[1].MediaID)
	assert.Equal(t, b.ID, items[2].MediaID)

	require.NotNil(t, items[0].Media)
	assert.Equal(t, int64(25), items[0].Media.Duration)
}

func TestAddToPlaylist_MediaNotFound(t *testing.T) {
	service, _, channelID, cleanup := setupLoopingChannel(t)
	defer cleanup()

	_, err := service.AddToPlaylist(context.Background(), channelID, uuid.New(), 0)

	assert.ErrorIs(t, err, ErrMediaNotFound)
}

func TestAddToPlaylist_WrongChannelType(t *testing.T) {
	repos, database, cleanup := setupTestRepos(t)
	defer cleanup()
	ctx := context.Background()

	service := NewPlaylistService(database, repos)
	_, err := NewChannelService(repos).CreateChannel(ctx, "3", "Daily", models.ChannelTypeDailySlots, true)
	require.NoError(t, err)
	media := createCatalogEntry(t, repos, "a.mp4", 100)

	_, err = service.AddToPlaylist(ctx, "3", media.ID, 0)

	assert.ErrorIs(t, err, ErrWrongChannelType)
}

func TestRemoveFromPlaylist_ClosesGap(t *testing.T) {
	service, repos, channelID, cleanup := setupLoopingChannel(t)
	defer cleanup()
	ctx := context.Background()

	a := createCatalogEntry(t, repos, "a.mp4", 100)
	b := createCatalogEntry(t, repos, "b.mp4", 50)

	first, err := service.AddToPlaylist(ctx, channelID, a.ID, 0)
	require.NoError(t, err)
	_, err = service.AddToPlaylist(ctx, channelID, b.ID, 1)
	require.NoError(t, err)

	require.NoError(t, service.RemoveFromPlaylist(ctx, channelID, first.ID))

	items, err := service.GetPlaylist(ctx, channelID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].MediaID)
	assert.Equal(t, 0, items[0].Position)
}

func TestReorderPlaylist(t *testing.T) {
	service, repos, channelID, cleanup := setupLoopingChannel(t)
	defer cleanup()
	ctx := context.Background()

	a := createCatalogEntry(t, repos, "a.mp4", 100)
	b := createCatalogEntry(t, repos, "b.mp4", 50)

	itemA, err := service.AddToPlaylist(ctx, channelID, a.ID, 0)
	require.NoError(t, err)
	itemB, err := service.AddToPlaylist(ctx, channelID, b.ID, 1)
	require.NoError(t, err)

	err = service.ReorderPlaylist(ctx, channelID, []db.ReorderItem{
		{ID: itemA.ID, Position: 1},
		{ID: itemB.ID, Position: 0},
	})
	require.NoError(t, err)

	items, err := service.GetPlaylist(ctx, channelID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, b.ID, items[0].MediaID)
	assert.Equal(t, a.ID, items[1].MediaID)
}
