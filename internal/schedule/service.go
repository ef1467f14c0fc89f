package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/cathodetv/cathode/internal/db"
	"github.com/cathodetv/cathode/internal/logger"
	"github.com/cathodetv/cathode/internal/models"
)

// Service resolves now-playing queries against stored schedules. It owns
// all the I/O around the pure engine: it captures a schedule snapshot and
// a duration table per call, then hands both to ResolveNowPlaying. The
// engine itself never touches the database, which is what keeps concurrent
// viewer queries coordination-free.
type Service struct {
	repos *db.Repositories
}

// NewService creates a new schedule resolution service instance
func NewService(repos *db.Repositories) *Service {
	return &Service{
		repos: repos,
	}
}

// NowPlaying resolves what the given channel is playing right now.
//
// Returns ErrChannelNotFound when the channel does not exist
// (a usage error) and ErrNoProgram when the channel is valid but off air
// (a neutral state); callers present the two differently.
func (s *Service) NowPlaying(ctx context.Context, channelID string) (*NowPlaying, error) {
	return s.NowPlayingAt(ctx, channelID, time.Now().UTC())
}

// NowPlayingAt resolves what the given channel is playing at an arbitrary
// instant. The instant is read once here and threaded through the whole
// computation so every timestamp in the answer is self-consistent.
func (s *Service) NowPlayingAt(ctx context.Context, channelID string, now time.Time) (*NowPlaying, error) {
	logger.Log.Debug().
		Str("channel_id", channelID).
		Time("now", now).
		Msg("Resolving now playing")

	snap, lookup, err := s.snapshot(ctx, channelID)
	if err != nil {
		return nil, err
	}

	answer, err := ResolveNowPlaying(*snap, lookup, now)
	if err != nil {
		if IsNoProgram(err) {
			logger.Log.Debug().
				Str("channel_id", channelID).
				Msg("Channel is off air")
			return nil, err
		}
		logger.Log.Warn().
			Err(err).
			Str("channel_id", channelID).
			Msg("Now playing resolution failed")
		return nil, err
	}

	logger.Log.Info().
		Str("channel_id", channelID).
		Str("content_id", answer.ContentID).
		Int64("offset_seconds", answer.OffsetSeconds).
		Time("ends_at", answer.EndsAt).
		Msg("Resolved now playing")

	return answer, nil
}

// snapshot captures one channel's scheduling state and duration table as
// an immutable per-call view.
func (s *Service) snapshot(ctx context.Context, channelID string) (*Snapshot, DurationLookup, error) {
	ch, err := s.repos.Channels.GetByID(ctx, channelID)
	if err != nil {
		if db.IsNotFound(err) {
			logger.Log.Warn().
				Str("channel_id", channelID).
				Msg("Now playing query for unknown channel")
			return nil, nil, ErrChannelNotFound
		}
		logger.Log.Error().
			Err(err).
			Str("channel_id", channelID).
			Msg("Failed to fetch channel")
		return nil, nil, fmt.Errorf("failed to get channel: %w", err)
	}

	snap := &Snapshot{
		ChannelID: ch.ID,
		Type:      ch.Type,
	}

	switch ch.Type {
	case models.ChannelTypeDailySlots:
		lookup, err := s.loadSlots(ctx, snap)
		if err != nil {
			return nil, nil, err
		}
		return snap, lookup, nil

	case models.ChannelTypeLoopingPlaylist:
		if err := s.loadPlaylist(ctx, snap); err != nil {
			return nil, nil, err
		}
		return snap, func(string) (int64, bool) { return 0, false }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownChannelType, ch.Type)
	}
}

// loadSlots fills the snapshot's slot definitions and returns a duration
// lookup backed by a single catalog read.
func (s *Service) loadSlots(ctx context.Context, snap *Snapshot) (DurationLookup, error) {
	slots, err := s.repos.Slots.GetByChannelID(ctx, snap.ChannelID)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("channel_id", snap.ChannelID).
			Msg("Failed to fetch slots")
		return nil, fmt.Errorf("failed to get slots: %w", err)
	}

	snap.Slots = make([]SlotDef, 0, len(slots))
	contentIDs := make([]string, 0, len(slots))
	for _, slot := range slots {
		def := SlotDef{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			ContentID: slot.ContentID,
		}
		if slot.Title != nil {
			def.Title = *slot.Title
		}
		snap.Slots = append(snap.Slots, def)
		contentIDs = append(contentIDs, slot.ContentID)
	}

	durations, err := s.repos.Media.DurationsByFilePath(ctx, contentIDs)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("channel_id", snap.ChannelID).
			Msg("Failed to fetch durations")
		return nil, fmt.Errorf("failed to get durations: %w", err)
	}

	return func(contentID string) (int64, bool) {
		d, ok := durations[contentID]
		return d, ok
	}, nil
}

// loadPlaylist fills the snapshot's playlist entries. Durations come from
// the joined media rows and are authoritative for this resolve call.
func (s *Service) loadPlaylist(ctx context.Context, snap *Snapshot) error {
	items, err := s.repos.PlaylistItems.GetWithMedia(ctx, snap.ChannelID)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("channel_id", snap.ChannelID).
			Msg("Failed to fetch playlist")
		return fmt.Errorf("failed to get playlist: %w", err)
	}

	snap.Playlist = make([]PlaylistEntry, 0, len(items))
	for _, item := range items {
		if item.Media == nil {
			logger.Log.Warn().
				Str("channel_id", snap.ChannelID).
				Str("item_id", item.ID.String()).
				Msg("Skipping playlist item with missing media row")
			continue
		}
		snap.Playlist = append(snap.Playlist, PlaylistEntry{
			ContentID: item.Media.FilePath,
			Title:     item.Media.Title,
			Duration:  item.Media.Duration,
		})
	}

	return nil
}
