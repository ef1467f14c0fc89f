package channel

import (
	"context"
	"fmt"

	"github.com/cathodetv/cathode/internal/db"
	"github.com/cathodetv/cathode/internal/logger"
	"github.com/cathodetv/cathode/internal/models"
	"github.com/cathodetv/cathode/internal/schedule"
)

// SlotInput is one authored slot as submitted by the admin surface.
type SlotInput struct {
	StartTime string
	EndTime   string
	ContentID string
	Title     *string
}

// SlotService handles business logic for daily slot administration
type SlotService struct {
	repos *db.Repositories
}

// NewSlotService creates a new slot service instance
func NewSlotService(repos *db.Repositories) *SlotService {
	return &SlotService{
		repos: repos,
	}
}

// GetSlots retrieves a channel's slot list in authoring order
func (s *SlotService) GetSlots(ctx context.Context, channelID string) ([]*models.ScheduleSlot, error) {
	if _, err := s.requireDailyChannel(ctx, channelID); err != nil {
		return nil, err
	}

	slots, err := s.repos.Slots.GetByChannelID(ctx, channelID)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("channel_id", channelID).
			Msg("Failed to get slots")
		return nil, fmt.Errorf("failed to get slots: %w", err)
	}

	return slots, nil
}

// ReplaceSlots swaps a channel's entire slot list for a new one.
//
// Each slot is validated the same way the resolver validates: parseable
// start and end times and a non-zero window. Invalid entries reject the
// whole write here, unlike at resolve time, because the admin is present
// to fix the edit.
func (s *SlotService) ReplaceSlots(ctx context.Context, channelID string, inputs []SlotInput) ([]*models.ScheduleSlot, error) {
	if _, err := s.requireDailyChannel(ctx, channelID); err != nil {
		return nil, err
	}

	slots := make([]*models.ScheduleSlot, 0, len(inputs))
	for i, input := range inputs {
		start, err := schedule.ParseTimeOfDay(input.StartTime)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		end, err := schedule.ParseTimeOfDay(input.EndTime)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		if start == end {
			return nil, fmt.Errorf("slot %d: %w: start equals end", i, schedule.ErrInvalidTimeOfDay)
		}
		if input.ContentID == "" {
			return nil, fmt.Errorf("slot %d: content id must not be empty", i)
		}

		slot := models.NewScheduleSlot(channelID, i, input.StartTime, input.EndTime, input.ContentID)
		slot.Title = input.Title
		slots = append(slots, slot)
	}

	if err := s.repos.Slots.ReplaceForChannel(ctx, channelID, slots); err != nil {
		logger.Log.Error().
			Err(err).
			Str("channel_id", channelID).
			Msg("Failed to replace slots")
		return nil, fmt.Errorf("failed to replace slots: %w", err)
	}

	logger.Log.Info().
		Str("channel_id", channelID).
		Int("slots", len(slots)).
		Msg("Slot schedule replaced")

	return slots, nil
}

// requireDailyChannel loads the channel and verifies it uses daily slots
func (s *SlotService) requireDailyChannel(ctx context.Context, channelID string) (*models.Channel, error) {
	ch, err := s.repos.Channels.GetByID(ctx, channelID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrChannelNotFound
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	if ch.Type != models.ChannelTypeDailySlots {
		return nil, ErrWrongChannelType
	}
	return ch, nil
}
