package channel

import (
	"context"
	"fmt"
	"time"

	"github.com/cathodetv/cathode/internal/db"
	"github.com/cathodetv/cathode/internal/logger"
	"github.com/cathodetv/cathode/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaylistService handles business logic for looping-playlist administration
type PlaylistService struct {
	repos *db.Repositories
	db    *db.DB
}

// NewPlaylistService creates a new playlist service instance
func NewPlaylistService(database *db.DB, repos *db.Repositories) *PlaylistService {
	return &PlaylistService{
		repos: repos,
		db:    database,
	}
}

// AddToPlaylist adds a media item to a channel's playlist at a specific position
func (s *PlaylistService) AddToPlaylist(ctx context.Context, channelID string, mediaID uuid.UUID, position int) (*models.PlaylistItem, error) {
	if position < 0 {
		logger.Log.Warn().
			Str("channel_id", channelID).
			Str("media_id", mediaID.String()).
			Int("position", position).
			Msg("Add to playlist failed: invalid position")
		return nil, fmt.Errorf("failed to add media to playlist: %w", ErrInvalidPosition)
	}

	if err := s.requireLoopingChannel(ctx, channelID); err != nil {
		return nil, fmt.Errorf("failed to add media to playlist: %w", err)
	}

	media, err := s.repos.Media.GetByID(ctx, mediaID)
	if err != nil {
		if db.IsNotFound(err) {
			logger.Log.Warn().
				Str("media_id", mediaID.String()).
				Msg("Add to playlist failed: media not found")
			return nil, fmt.Errorf("failed to add media to playlist: %w", ErrMediaNotFound)
		}
		return nil, fmt.Errorf("failed to add media to playlist: %w", err)
	}

	// A zero-duration entry would be skipped at resolve time anyway, but
	// warn the admin up front since probing may still be pending.
	if media.Duration <= 0 {
		logger.Log.Warn().
			Str("media_id", mediaID.String()).
			Str("file_path", media.FilePath).
			Msg("Adding media with unknown duration to playlist; it will be skipped until probed")
	}

	var newItem *models.PlaylistItem
	err = s.db.WithTransaction(ctx, func(tx *gorm.DB) error {
		// Shift existing items at or after the target position
		result := tx.Model(&models.PlaylistItem{}).
			Where("channel_id = ? AND position >= ?", channelID, position).
			Update("position", gorm.Expr("position + 1"))
		if result.Error != nil {
			return fmt.Errorf("failed to shift playlist positions: %w", result.Error)
		}

		newItem = &models.PlaylistItem{
			ID:        uuid.New(),
			ChannelID: channelID,
			MediaID:   mediaID,
			Position:  position,
			CreatedAt: time.Now().UTC(),
		}

		if err := tx.Create(newItem).Error; err != nil {
			return fmt.Errorf("failed to create playlist item: %w", err)
		}

		return nil
	})
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("channel_id", channelID).
			Str("media_id", mediaID.String()).
			Msg("Failed to add media to playlist")
		return nil, fmt.Errorf("failed to add media to playlist: %w", err)
	}

	newItem.Media = media

	logger.Log.Info().
		Str("channel_id", channelID).
		Str("media_id", mediaID.String()).
		Int("position", position).
		Msg("Media added to playlist")

	return newItem, nil
}

// GetPlaylist retrieves a channel's playlist with media details, in order
func (s *PlaylistService) GetPlaylist(ctx context.Context, channelID string) ([]*models.PlaylistItem, error) {
	if err := s.requireLoopingChannel(ctx, channelID); err != nil {
		return nil, err
	}

	items, err := s.repos.PlaylistItems.GetWithMedia(ctx, channelID)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("channel_id", channelID).
			Msg("Failed to get playlist")
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}

	return items, nil
}

// RemoveFromPlaylist removes one item and closes the position gap
func (s *PlaylistService) RemoveFromPlaylist(ctx context.Context, channelID string, itemID uuid.UUID) error {
	item, err := s.repos.PlaylistItems.GetByID(ctx, itemID)
	if err != nil {
		if db.IsNotFound(err) {
			return fmt.Errorf("failed to remove playlist item: %w", ErrPlaylistItemNotFound)
		}
		return fmt.Errorf("failed to remove playlist item: %w", err)
	}
	if item.ChannelID != channelID {
		return fmt.Errorf("failed to remove playlist item: %w", ErrPlaylistItemNotFound)
	}

	err = s.db.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", itemID.String()).Delete(&models.PlaylistItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete playlist item: %w", err)
		}

		result := tx.Model(&models.PlaylistItem{}).
			Where("channel_id = ? AND position > ?", channelID, item.Position).
			Update("position", gorm.Expr("position - 1"))
		if result.Error != nil {
			return fmt.Errorf("failed to close playlist position gap: %w", result.Error)
		}
		return nil
	})
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("channel_id", channelID).
			Str("item_id", itemID.String()).
			Msg("Failed to remove playlist item")
		return fmt.Errorf("failed to remove playlist item: %w", err)
	}

	logger.Log.Info().
		Str("channel_id", channelID).
		Str("item_id", itemID.String()).
		Msg("Playlist item removed")

	return nil
}

// ReorderPlaylist applies a full set of position updates atomically
func (s *PlaylistService) ReorderPlaylist(ctx context.Context, channelID string, items []db.ReorderItem) error {
	if err := s.requireLoopingChannel(ctx, channelID); err != nil {
		return err
	}

	for _, item := range items {
		if item.Position < 0 {
			return fmt.Errorf("failed to reorder playlist: %w", ErrInvalidPosition)
		}
	}

	if err := s.repos.PlaylistItems.Reorder(ctx, channelID, items); err != nil {
		logger.Log.Error().
			Err(err).
			Str("channel_id", channelID).
			Msg("Failed to reorder playlist")
		return fmt.Errorf("failed to reorder playlist: %w", err)
	}

	logger.Log.Info().
		Str("channel_id", channelID).
		Int("items", len(items)).
		Msg("Playlist reordered")

	return nil
}

// requireLoopingChannel loads the channel and verifies it loops a playlist
func (s *PlaylistService) requireLoopingChannel(ctx context.Context, channelID string) error {
	ch, err := s.repos.Channels.GetByID(ctx, channelID)
	if err != nil {
		if db.IsNotFound(err) {
			return ErrChannelNotFound
		}
		return fmt.Errorf("failed to get channel: %w", err)
	}
	if ch.Type != models.ChannelTypeLoopingPlaylist {
		return ErrWrongChannelType
	}
	return nil
}
