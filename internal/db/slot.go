package db

import (
	"context"
	"fmt"

	"github.com/cathodetv/cathode/internal/models"
	"gorm.io/gorm"
)

// SlotRepository handles database operations for daily schedule slots
type SlotRepository struct {
	db *DB
}

// NewSlotRepository creates a new slot repository
func NewSlotRepository(db *DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// GetByChannelID retrieves all slots for a channel in authoring order
func (r *SlotRepository) GetByChannelID(ctx context.Context, channelID string) ([]*models.ScheduleSlot, error) {
	var slots []*models.ScheduleSlot
	result := r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("position ASC").
		Find(&slots)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get slots by channel: %w", MapGormError(result.Error))
	}
	return slots, nil
}

// ReplaceForChannel atomically swaps a channel's entire slot list.
// Slot edits always arrive as a whole schedule from the admin surface, so
// replace-all keeps positions dense without per-row shifting.
func (r *SlotRepository) ReplaceForChannel(ctx context.Context, channelID string, slots []*models.ScheduleSlot) error {
	return r.db.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("channel_id = ?", channelID).Delete(&models.ScheduleSlot{}).Error; err != nil {
			return fmt.Errorf("failed to clear slots: %w", MapGormError(err))
		}
		for _, slot := range slots {
			if err := tx.Create(slot).Error; err != nil {
				return fmt.Errorf("failed to create slot: %w", MapGormError(err))
			}
		}
		return nil
	})
}

// DeleteByChannelID deletes all slots for a channel
func (r *SlotRepository) DeleteByChannelID(ctx context.Context, channelID string) error {
	result := r.db.WithContext(ctx).Where("channel_id = ?", channelID).Delete(&models.ScheduleSlot{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete slots by channel: %w", MapGormError(result.Error))
	}
	return nil
}
