package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cathodetv/cathode/internal/channel"
	"github.com/cathodetv/cathode/internal/logger"
	"github.com/cathodetv/cathode/internal/models"
	"github.com/cathodetv/cathode/internal/schedule"
	"github.com/gin-gonic/gin"
)

// Now-playing status values
const (
	statusPlaying = "playing"
	statusOffAir  = "off_air"
)

// NowPlayingResponse represents the answer to a "what's playing" query.
// Status distinguishes an on-air program from the neutral off-air state;
// off-air is a valid answer, not an error.
type NowPlayingResponse struct {
	ChannelID     string     `json:"channel_id"`
	Status        string     `json:"status"`
	ContentID     string     `json:"content_id,omitempty"`
	Title         string     `json:"title,omitempty"`
	OffsetSeconds int64      `json:"offset_seconds,omitempty"`
	Duration      int64      `json:"duration_seconds,omitempty"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	EndsAt        *time.Time `json:"ends_at,omitempty"`

	// EndsAtEpochMs lets clients schedule their next poll for exactly the
	// transition instant instead of polling on a fixed interval.
	EndsAtEpochMs int64 `json:"ends_at_epoch_ms,omitempty"`
}

// LineupEntry represents one channel in the viewer-facing lineup
type LineupEntry struct {
	ID   string             `json:"id"`
	Name string             `json:"name"`
	Type models.ChannelType `json:"type"`
}

// LineupResponse represents the viewer-facing channel listing
type LineupResponse struct {
	Channels []*LineupEntry `json:"channels"`
}

// NowPlayingHandler handles now-playing and lineup API requests
type NowPlayingHandler struct {
	scheduleService *schedule.Service
	channelService  *channel.ChannelService
}

// NewNowPlayingHandler creates a new now-playing handler instance
func NewNowPlayingHandler(scheduleService *schedule.Service, channelService *channel.ChannelService) *NowPlayingHandler {
	return &NowPlayingHandler{
		scheduleService: scheduleService,
		channelService:  channelService,
	}
}

// GetNowPlaying handles GET /api/channels/:id/now
func (h *NowPlayingHandler) GetNowPlaying(c *gin.Context) {
	channelID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	answer, err := h.scheduleService.NowPlaying(ctx, channelID)
	if err != nil {
		if errors.Is(err, schedule.ErrChannelNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Channel not found",
			})
			return
		}
		if schedule.IsNoProgram(err) {
			// Off air: a neutral state, not an error indicator
			c.JSON(http.StatusOK, NowPlayingResponse{
				ChannelID: channelID,
				Status:    statusOffAir,
			})
			return
		}

		logger.Log.Error().
			Err(err).
			Str("channel_id", channelID).
			Msg("Failed to resolve now playing")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "resolve_failed",
			Message: "Failed to resolve now playing",
		})
		return
	}

	c.JSON(http.StatusOK, NowPlayingResponse{
		ChannelID:     channelID,
		Status:        statusPlaying,
		ContentID:     answer.ContentID,
		Title:         answer.Title,
		OffsetSeconds: answer.OffsetSeconds,
		Duration:      answer.Duration,
		StartedAt:     &answer.StartedAt,
		EndsAt:        &answer.EndsAt,
		EndsAtEpochMs: answer.EndsAt.UnixMilli(),
	})
}

// GetLineup handles GET /api/lineup
func (h *NowPlayingHandler) GetLineup(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	channels, err := h.channelService.Lineup(ctx)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Msg("Failed to build lineup")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to retrieve lineup",
		})
		return
	}

	entries := make([]*LineupEntry, len(channels))
	for i, ch := range channels {
		entries[i] = &LineupEntry{
			ID:   ch.ID,
			Name: ch.Name,
			Type: ch.Type,
		}
	}

	c.JSON(http.StatusOK, LineupResponse{Channels: entries})
}

// SetupNowPlayingRoutes registers now-playing and lineup routes
func SetupNowPlayingRoutes(apiGroup *gin.RouterGroup, scheduleService *schedule.Service, channelService *channel.ChannelService) {
	handler := NewNowPlayingHandler(scheduleService, channelService)
	apiGroup.GET("/channels/:id/now", handler.GetNowPlaying)
	apiGroup.GET("/lineup", handler.GetLineup)
}
