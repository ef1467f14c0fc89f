package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cathodetv/cathode/internal/channel"
	"github.com/cathodetv/cathode/internal/db"
	"github.com/cathodetv/cathode/internal/logger"
	"github.com/cathodetv/cathode/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Request/Response DTOs

// CreateChannelRequest represents a request to create a new channel
type CreateChannelRequest struct {
	ID     string             `json:"id" binding:"required"`
	Name   string             `json:"name" binding:"required"`
	Type   models.ChannelType `json:"type" binding:"required"`
	Active *bool              `json:"active,omitempty"`
}

// UpdateChannelRequest represents a request to update channel metadata (partial update)
type UpdateChannelRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// ChannelResponse represents a channel in API responses
type ChannelResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Type      models.ChannelType `json:"type"`
	Active    bool               `json:"active"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ChannelListResponse represents a list of channels
type ChannelListResponse struct {
	Channels []*ChannelResponse `json:"channels"`
}

// Slot DTOs

// SlotRequest represents one authored slot in a schedule replace request
type SlotRequest struct {
	StartTime string  `json:"start_time" binding:"required"`
	EndTime   string  `json:"end_time" binding:"required"`
	ContentID string  `json:"content_id" binding:"required"`
	Title     *string `json:"title,omitempty"`
}

// ReplaceSlotsRequest represents a request to replace a channel's slot schedule
type ReplaceSlotsRequest struct {
	Slots []SlotRequest `json:"slots" binding:"required"`
}

// SlotResponse represents a schedule slot in API responses
type SlotResponse struct {
	ID        string  `json:"id"`
	Position  int     `json:"position"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	ContentID string  `json:"content_id"`
	Title     *string `json:"title,omitempty"`
}

// SlotListResponse represents a channel's slot schedule
type SlotListResponse struct {
	Slots []*SlotResponse `json:"slots"`
}

// Playlist DTOs

// AddToPlaylistRequest represents a request to add media to a playlist
type AddToPlaylistRequest struct {
	MediaID  string `json:"media_id" binding:"required"`
	Position int    `json:"position" binding:"gte=0"`
}

// ReorderPlaylistRequest represents a request to reorder playlist items
type ReorderPlaylistRequest struct {
	Items []ReorderItem `json:"items" binding:"required,min=1"`
}

// ReorderItem represents an item position in reorder request
type ReorderItem struct {
	ItemID   string `json:"item_id" binding:"required"`
	Position int    `json:"position" binding:"gte=0"`
}

// PlaylistItemResponse represents a playlist item with embedded media details
type PlaylistItemResponse struct {
	ID        string        `json:"id"`
	ChannelID string        `json:"channel_id"`
	MediaID   string        `json:"media_id"`
	Position  int           `json:"position"`
	Media     *models.Media `json:"media,omitempty"`
}

// PlaylistResponse represents a channel's playlist
type PlaylistResponse struct {
	Items         []*PlaylistItemResponse `json:"items"`
	TotalDuration int64                   `json:"total_duration_seconds"`
}

// ChannelHandler handles channel-related API requests
type ChannelHandler struct {
	channelService  *channel.ChannelService
	slotService     *channel.SlotService
	playlistService *channel.PlaylistService
}

// NewChannelHandler creates a new channel handler instance
func NewChannelHandler(channelService *channel.ChannelService, slotService *channel.SlotService, playlistService *channel.PlaylistService) *ChannelHandler {
	return &ChannelHandler{
		channelService:  channelService,
		slotService:     slotService,
		playlistService: playlistService,
	}
}

// toChannelResponse converts a channel model to API response format
func toChannelResponse(ch *models.Channel) *ChannelResponse {
	return &ChannelResponse{
		ID:        ch.ID,
		Name:      ch.Name,
		Type:      ch.Type,
		Active:    ch.Active,
		CreatedAt: ch.CreatedAt,
		UpdatedAt: ch.UpdatedAt,
	}
}

// toSlotResponse converts a slot model to API response format
func toSlotResponse(slot *models.ScheduleSlot) *SlotResponse {
	return &SlotResponse{
		ID:        slot.ID.String(),
		Position:  slot.Position,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		ContentID: slot.ContentID,
		Title:     slot.Title,
	}
}

// toPlaylistItemResponse converts a playlist item model to API response format
func toPlaylistItemResponse(item *models.PlaylistItem) *PlaylistItemResponse {
	return &PlaylistItemResponse{
		ID:        item.ID.String(),
		ChannelID: item.ChannelID,
		MediaID:   item.MediaID.String(),
		Position:  item.Position,
		Media:     item.Media,
	}
}

// CreateChannel handles POST /api/channels
func (h *ChannelHandler) CreateChannel(c *gin.Context) {
	var req CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	// Channels default to active so they show up in the lineup immediately
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	newChannel, err := h.channelService.CreateChannel(ctx, req.ID, req.Name, req.Type, active)
	if err != nil {
		if errors.Is(err, channel.ErrDuplicateChannel) {
			c.JSON(http.StatusConflict, ErrorResponse{
				Error:   "duplicate_channel",
				Message: "A channel with this id or name already exists",
			})
			return
		}
		if errors.Is(err, channel.ErrInvalidChannelType) || errors.Is(err, channel.ErrInvalidChannelID) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_request",
				Message: err.Error(),
			})
			return
		}

		logger.Log.Error().
			Err(err).
			Str("channel_id", req.ID).
			Msg("Failed to create channel")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "create_failed",
			Message: "Failed to create channel",
		})
		return
	}

	c.JSON(http.StatusCreated, toChannelResponse(newChannel))
}

// ListChannels handles GET /api/channels
func (h *ChannelHandler) ListChannels(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	channels, err := h.channelService.List(ctx)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Msg("Failed to list channels")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to retrieve channel list",
		})
		return
	}

	responses := make([]*ChannelResponse, len(channels))
	for i, ch := range channels {
		responses[i] = toChannelResponse(ch)
	}

	c.JSON(http.StatusOK, ChannelListResponse{
		Channels: responses,
	})
}

// GetChannel handles GET /api/channels/:id
func (h *ChannelHandler) GetChannel(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ch, err := h.channelService.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, channel.ErrChannelNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Channel not found",
			})
			return
		}

		logger.Log.Error().
			Err(err).
			Str("channel_id", c.Param("id")).
			Msg("Failed to get channel by ID")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to retrieve channel",
		})
		return
	}

	c.JSON(http.StatusOK, toChannelResponse(ch))
}

// UpdateChannel handles PUT /api/channels/:id
func (h *ChannelHandler) UpdateChannel(c *gin.Context) {
	var req UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ch, err := h.channelService.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, channel.ErrChannelNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Channel not found",
			})
			return
		}

		logger.Log.Error().
			Err(err).
			Str("channel_id", c.Param("id")).
			Msg("Failed to get channel for update")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to retrieve channel",
		})
		return
	}

	// Apply partial updates; the scheduling mode is fixed at creation
	if req.Name != nil {
		ch.Name = *req.Name
	}
	if req.Active != nil {
		ch.Active = *req.Active
	}

	if err := h.channelService.UpdateChannel(ctx, ch); err != nil {
		if errors.Is(err, channel.ErrDuplicateChannel) {
			c.JSON(http.StatusConflict, ErrorResponse{
				Error:   "duplicate_channel",
				Message: "A channel with this name already exists",
			})
			return
		}

		logger.Log.Error().
			Err(err).
			Str("channel_id", ch.ID).
			Msg("Failed to update channel")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "update_failed",
			Message: "Failed to update channel",
		})
		return
	}

	c.JSON(http.StatusOK, toChannelResponse(ch))
}

// DeleteChannel handles DELETE /api/channels/:id
func (h *ChannelHandler) DeleteChannel(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.channelService.DeleteChannel(ctx, c.Param("id")); err != nil {
		if errors.Is(err, channel.ErrChannelNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Channel not found",
			})
			return
		}

		logger.Log.Error().
			Err(err).
			Str("channel_id", c.Param("id")).
			Msg("Failed to delete channel")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "delete_failed",
			Message: "Failed to delete channel",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSlots handles GET /api/channels/:id/slots
func (h *ChannelHandler) GetSlots(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	slots, err := h.slotService.GetSlots(ctx, c.Param("id"))
	if err != nil {
		h.respondSlotError(c, err)
		return
	}

	responses := make([]*SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = toSlotResponse(slot)
	}

	c.JSON(http.StatusOK, SlotListResponse{Slots: responses})
}

// ReplaceSlots handles PUT /api/channels/:id/slots
func (h *ChannelHandler) ReplaceSlots(c *gin.Context) {
	var req ReplaceSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	inputs := make([]channel.SlotInput, len(req.Slots))
	for i, slot := range req.Slots {
		inputs[i] = channel.SlotInput{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			ContentID: slot.ContentID,
			Title:     slot.Title,
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	slots, err := h.slotService.ReplaceSlots(ctx, c.Param("id"), inputs)
	if err != nil {
		h.respondSlotError(c, err)
		return
	}

	responses := make([]*SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = toSlotResponse(slot)
	}

	c.JSON(http.StatusOK, SlotListResponse{Slots: responses})
}

// respondSlotError maps slot service errors to HTTP responses
func (h *ChannelHandler) respondSlotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, channel.ErrChannelNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "Channel not found",
		})
	case errors.Is(err, channel.ErrWrongChannelType):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "wrong_channel_type",
			Message: "Slot schedules only apply to daily-slots channels",
		})
	default:
		logger.Log.Error().
			Err(err).
			Str("channel_id", c.Param("id")).
			Msg("Slot operation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "slot_operation_failed",
			Message: err.Error(),
		})
	}
}

// GetPlaylist handles GET /api/channels/:id/playlist
func (h *ChannelHandler) GetPlaylist(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := h.playlistService.GetPlaylist(ctx, c.Param("id"))
	if err != nil {
		h.respondPlaylistError(c, err)
		return
	}

	responses := make([]*PlaylistItemResponse, len(items))
	var total int64
	for i, item := range items {
		responses[i] = toPlaylistItemResponse(item)
		if item.Media != nil {
			total += item.Media.Duration
		}
	}

	c.JSON(http.StatusOK, PlaylistResponse{
		Items:         responses,
		TotalDuration: total,
	})
}

// AddToPlaylist handles POST /api/channels/:id/playlist
func (h *ChannelHandler) AddToPlaylist(c *gin.Context) {
	var req AddToPlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	mediaID, err := uuid.Parse(req.MediaID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid media ID format",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.playlistService.AddToPlaylist(ctx, c.Param("id"), mediaID, req.Position)
	if err != nil {
		if errors.Is(err, channel.ErrMediaNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "media_not_found",
				Message: "Media not found",
			})
			return
		}
		h.respondPlaylistError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPlaylistItemResponse(item))
}

// RemoveFromPlaylist handles DELETE /api/channels/:id/playlist/:itemId
func (h *ChannelHandler) RemoveFromPlaylist(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid playlist item ID format",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.playlistService.RemoveFromPlaylist(ctx, c.Param("id"), itemID); err != nil {
		if errors.Is(err, channel.ErrPlaylistItemNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Playlist item not found",
			})
			return
		}
		h.respondPlaylistError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ReorderPlaylist handles PUT /api/channels/:id/playlist/reorder
func (h *ChannelHandler) ReorderPlaylist(c *gin.Context) {
	var req ReorderPlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	items := make([]db.ReorderItem, len(req.Items))
	for i, item := range req.Items {
		id, err := uuid.Parse(item.ItemID)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_id",
				Message: "Invalid playlist item ID format",
			})
			return
		}
		items[i] = db.ReorderItem{ID: id, Position: item.Position}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.playlistService.ReorderPlaylist(ctx, c.Param("id"), items); err != nil {
		h.respondPlaylistError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondPlaylistError maps playlist service errors to HTTP responses
func (h *ChannelHandler) respondPlaylistError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, channel.ErrChannelNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "Channel not found",
		})
	case errors.Is(err, channel.ErrWrongChannelType):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "wrong_channel_type",
			Message: "Playlists only apply to looping-playlist channels",
		})
	case errors.Is(err, channel.ErrInvalidPosition):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_position",
			Message: "Position must be non-negative",
		})
	default:
		logger.Log.Error().
			Err(err).
			Str("channel_id", c.Param("id")).
			Msg("Playlist operation failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "playlist_operation_failed",
			Message: "Playlist operation failed",
		})
	}
}

// SetupChannelRoutes registers channel administration routes
func SetupChannelRoutes(apiGroup *gin.RouterGroup, channelService *channel.ChannelService, slotService *channel.SlotService, playlistService *channel.PlaylistService) {
	handler := NewChannelHandler(channelService, slotService, playlistService)

	channels := apiGroup.Group("/channels")
	channels.POST("", handler.CreateChannel)
	channels.GET("", handler.ListChannels)
	channels.GET("/:id", handler.GetChannel)
	channels.PUT("/:id", handler.UpdateChannel)
	channels.DELETE("/:id", handler.DeleteChannel)

	channels.GET("/:id/slots", handler.GetSlots)
	channels.PUT("/:id/slots", handler.ReplaceSlots)

	channels.GET("/:id/playlist", handler.GetPlaylist)
	channels.POST("/:id/playlist", handler.AddToPlaylist)
	channels.DELETE("/:id/playlist/:itemId", handler.RemoveFromPlaylist)
	channels.PUT("/:id/playlist/reorder", handler.ReorderPlaylist)
}
