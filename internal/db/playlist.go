package db

import (
	"context"
	"fmt"

	"github.com/cathodetv/cathode/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaylistItemRepository handles database operations for playlist items
type PlaylistItemRepository struct {
	db *DB
}

// NewPlaylistItemRepository creates a new playlist item repository
func NewPlaylistItemRepository(db *DB) *PlaylistItemRepository {
	return &PlaylistItemRepository{db: db}
}

// ReorderItem represents a playlist item position update
type ReorderItem struct {
	ID       uuid.UUID
	Position int
}

// Create inserts a new playlist item into the database
func (r *PlaylistItemRepository) Create(ctx context.Context, item *models.PlaylistItem) error {
	result := r.db.WithContext(ctx).Create(item)
	if result.Error != nil {
		return fmt.Errorf("failed to create playlist item: %w", MapGormError(result.Error))
	}
	return nil
}

// GetByID retrieves a playlist item by its UUID
func (r *PlaylistItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PlaylistItem, error) {
	var item models.PlaylistItem
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&item)
	if result.Error != nil {
		return nil, MapGormError(result.Error)
	}
	return &item, nil
}

// GetByChannelID retrieves all playlist items for a channel, ordered by position
func (r *PlaylistItemRepository) GetByChannelID(ctx context.Context, channelID string) ([]*models.PlaylistItem, error) {
	var items []*models.PlaylistItem
	result := r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("position ASC").
		Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get playlist items by channel: %w", MapGormError(result.Error))
	}
	return items, nil
}

// GetWithMedia retrieves playlist items for a channel with joined media data
func (r *PlaylistItemRepository) GetWithMedia(ctx context.Context, channelID string) ([]*models.PlaylistItem, error) {
	items, err := r.GetByChannelID(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	mediaIDs := make([]string, 0, len(items))
	for _, item := range items {
		mediaIDs = append(mediaIDs, item.MediaID.String())
	}

	var mediaRows []*models.Media
	result := r.db.WithContext(ctx).Where("id IN ?", mediaIDs).Find(&mediaRows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load media for playlist items: %w", MapGormError(result.Error))
	}

	byID := make(map[uuid.UUID]*models.Media, len(mediaRows))
	for _, media := range mediaRows {
		byID[media.ID] = media
	}
	for _, item := range items {
		item.Media = byID[item.MediaID]
	}

	return items, nil
}

// Delete deletes a playlist item by its UUID
func (r *PlaylistItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&models.PlaylistItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete playlist item: %w", MapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByChannelID deletes all playlist items for a channel
func (r *PlaylistItemRepository) DeleteByChannelID(ctx context.Context, channelID string) error {
	result := r.db.WithContext(ctx).Where("channel_id = ?", channelID).Delete(&models.PlaylistItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete playlist items by channel: %w", MapGormError(result.Error))
	}
	return nil
}

// Reorder updates positions for multiple playlist items in a transaction
func (r *PlaylistItemRepository) Reorder(ctx context.Context, channelID string, items []ReorderItem) error {
	return r.db.WithTransaction(ctx, func(tx *gorm.DB) error {
		for _, item := range items {
			result := tx.Model(&models.PlaylistItem{}).
				Where("id = ? AND channel_id = ?", item.ID.String(), channelID).
				Update("position", item.Position)
			if result.Error != nil {
				return fmt.Errorf("failed to update position for item %s: %w", item.ID, MapGormError(result.Error))
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("playlist item %s not found or does not belong to channel", item.ID)
			}
		}
		return nil
	})
}
