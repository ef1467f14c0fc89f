// Package channel provides business logic for administering channels and
// their schedules.
package channel

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cathodetv/cathode/internal/db"
	"github.com/cathodetv/cathode/internal/logger"
	"github.com/cathodetv/cathode/internal/models"
)

// ChannelService handles business logic for channel operations
//
//nolint:revive // name matches established patterns in codebase
type ChannelService struct {
	repos *db.Repositories
}

// NewChannelService creates a new channel service instance
func NewChannelService(repos *db.Repositories) *ChannelService {
	return &ChannelService{
		repos: repos,
	}
}

// CreateChannel creates a new channel with validation
func (s *ChannelService) CreateChannel(ctx context.Context, id, name string, channelType models.ChannelType, active bool) (*models.Channel, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("failed to create channel: %w", ErrInvalidChannelID)
	}
	if !channelType.Valid() {
		logger.Log.Warn().
			Str("channel_id", id).
			Str("type", string(channelType)).
			Msg("Channel creation failed: invalid type")
		return nil, fmt.Errorf("failed to create channel: %w", ErrInvalidChannelType)
	}

	ch := models.NewChannel(id, name, channelType, active)

	if err := s.repos.Channels.Create(ctx, ch); err != nil {
		if db.IsDuplicate(err) {
			logger.Log.Warn().
				Str("channel_id", id).
				Str("name", name).
				Msg("Channel creation failed: duplicate id or name")
			return nil, fmt.Errorf("failed to create channel: %w", ErrDuplicateChannel)
		}
		logger.Log.Error().
			Err(err).
			Str("channel_id", id).
			Msg("Failed to create channel in database")
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	logger.Log.Info().
		Str("channel_id", ch.ID).
		Str("name", ch.Name).
		Str("type", string(ch.Type)).
		Msg("Channel created successfully")

	return ch, nil
}

// GetByID retrieves a channel by its id. Inactive channels resolve too;
// only the lineup hides them.
func (s *ChannelService) GetByID(ctx context.Context, id string) (*models.Channel, error) {
	ch, err := s.repos.Channels.GetByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrChannelNotFound
		}
		logger.Log.Error().
			Err(err).
			Str("channel_id", id).
			Msg("Failed to get channel by ID")
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	return ch, nil
}

// List retrieves all channels, active or not, in lineup order
func (s *ChannelService) List(ctx context.Context) ([]*models.Channel, error) {
	channels, err := s.repos.Channels.List(ctx)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Msg("Failed to list channels")
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}

	SortLineup(channels)
	return channels, nil
}

// Lineup retrieves the viewer-facing channel listing: active channels
// only, in lineup order.
func (s *ChannelService) Lineup(ctx context.Context) ([]*models.Channel, error) {
	channels, err := s.repos.Channels.ListActive(ctx)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Msg("Failed to list active channels")
		return nil, fmt.Errorf("failed to list active channels: %w", err)
	}

	SortLineup(channels)

	logger.Log.Debug().
		Int("count", len(channels)).
		Msg("Built channel lineup")

	return channels, nil
}

// SortLineup orders channels the way a lineup is presented: numerically
// when every channel id is an integer (so "10" follows "9"), otherwise
// lexicographically by id.
func SortLineup(channels []*models.Channel) {
	allNumeric := true
	for _, ch := range channels {
		if _, err := strconv.Atoi(ch.ID); err != nil {
			allNumeric = false
			break
		}
	}

	sort.SliceStable(channels, func(i, j int) bool {
		if allNumeric {
			a, _ := strconv.Atoi(channels[i].ID)
			b, _ := strconv.Atoi(channels[j].ID)
			return a < b
		}
		return channels[i].ID < channels[j].ID
	})
}

// UpdateChannel applies changes to an existing channel with validation
func (s *ChannelService) UpdateChannel(ctx context.Context, ch *models.Channel) error {
	if _, err := s.GetByID(ctx, ch.ID); err != nil {
		return err
	}
	if !ch.Type.Valid() {
		return fmt.Errorf("failed to update channel: %w", ErrInvalidChannelType)
	}

	if err := s.repos.Channels.Update(ctx, ch); err != nil {
		if db.IsDuplicate(err) {
			return fmt.Errorf("failed to update channel: %w", ErrDuplicateChannel)
		}
		logger.Log.Error().
			Err(err).
			Str("channel_id", ch.ID).
			Msg("Failed to update channel in database")
		return fmt.Errorf("failed to update channel: %w", err)
	}

	logger.Log.Info().
		Str("channel_id", ch.ID).
		Msg("Channel updated successfully")

	return nil
}

// DeleteChannel removes a channel together with its slots and playlist
func (s *ChannelService) DeleteChannel(ctx context.Context, id string) error {
	if err := s.repos.Channels.Delete(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return ErrChannelNotFound
		}
		logger.Log.Error().
			Err(err).
			Str("channel_id", id).
			Msg("Failed to delete channel")
		return fmt.Errorf("failed to delete channel: %w", err)
	}

	logger.Log.Info().
		Str("channel_id", id).
		Msg("Channel deleted")

	return nil
}
