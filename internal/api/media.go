package api

import (
	"context"
	"net/http"
	"time"

	"github.com/cathodetv/cathode/internal/db"
	"github.com/cathodetv/cathode/internal/logger"
	"github.com/cathodetv/cathode/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateMediaRequest represents a request to register a catalog entry.
// The external prober posts these after inspecting a file; duration may be
// zero while probing is still pending.
type CreateMediaRequest struct {
	FilePath   string  `json:"file_path" binding:"required"`
	Title      string  `json:"title" binding:"required"`
	Duration   int64   `json:"duration_seconds" binding:"gte=0"`
	VideoCodec *string `json:"video_codec,omitempty"`
	AudioCodec *string `json:"audio_codec,omitempty"`
	Playable   *bool   `json:"playable,omitempty"`
}

// UpdateMediaRequest represents a partial update to a catalog entry
type UpdateMediaRequest struct {
	Title      *string `json:"title,omitempty"`
	Duration   *int64  `json:"duration_seconds,omitempty"`
	VideoCodec *string `json:"video_codec,omitempty"`
	AudioCodec *string `json:"audio_codec,omitempty"`
	Playable   *bool   `json:"playable,omitempty"`
}

// MediaListResponse represents the media catalog listing
type MediaListResponse struct {
	Media []*models.Media `json:"media"`
}

// MediaHandler handles media catalog API requests
type MediaHandler struct {
	repos *db.Repositories
}

// NewMediaHandler creates a new media handler instance
func NewMediaHandler(repos *db.Repositories) *MediaHandler {
	return &MediaHandler{repos: repos}
}

// CreateMedia handles POST /api/media
func (h *MediaHandler) CreateMedia(c *gin.Context) {
	var req CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	media := models.NewMedia(req.FilePath, req.Title, req.Duration)
	media.VideoCodec = req.VideoCodec
	media.AudioCodec = req.AudioCodec
	if req.Playable != nil {
		media.Playable = *req.Playable
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repos.Media.Create(ctx, media); err != nil {
		if db.IsDuplicate(err) {
			c.JSON(http.StatusConflict, ErrorResponse{
				Error:   "duplicate_path",
				Message: "A catalog entry for this file path already exists",
			})
			return
		}

		logger.Log.Error().
			Err(err).
			Str("file_path", req.FilePath).
			Msg("Failed to create media entry")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "create_failed",
			Message: "Failed to create media entry",
		})
		return
	}

	c.JSON(http.StatusCreated, media)
}

// ListMedia handles GET /api/media
func (h *MediaHandler) ListMedia(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	media, err := h.repos.Media.List(ctx)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Msg("Failed to list media")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to retrieve media catalog",
		})
		return
	}

	c.JSON(http.StatusOK, MediaListResponse{Media: media})
}

// GetMedia handles GET /api/media/:id
func (h *MediaHandler) GetMedia(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid media ID format",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	media, err := h.repos.Media.GetByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Media not found",
			})
			return
		}

		logger.Log.Error().
			Err(err).
			Str("media_id", id.String()).
			Msg("Failed to get media")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to retrieve media",
		})
		return
	}

	c.JSON(http.StatusOK, media)
}

// UpdateMedia handles PUT /api/media/:id
func (h *MediaHandler) UpdateMedia(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid media ID format",
		})
		return
	}

	var req UpdateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	media, err := h.repos.Media.GetByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Media not found",
			})
			return
		}

		logger.Log.Error().
			Err(err).
			Str("media_id", id.String()).
			Msg("Failed to get media for update")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "query_failed",
			Message: "Failed to retrieve media",
		})
		return
	}

	if req.Title != nil {
		media.Title = *req.Title
	}
	if req.Duration != nil {
		media.Duration = *req.Duration
	}
	if req.VideoCodec != nil {
		media.VideoCodec = req.VideoCodec
	}
	if req.AudioCodec != nil {
		media.AudioCodec = req.AudioCodec
	}
	if req.Playable != nil {
		media.Playable = *req.Playable
	}

	if err := h.repos.Media.Update(ctx, media); err != nil {
		logger.Log.Error().
			Err(err).
			Str("media_id", id.String()).
			Msg("Failed to update media")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "update_failed",
			Message: "Failed to update media",
		})
		return
	}

	c.JSON(http.StatusOK, media)
}

// DeleteMedia handles DELETE /api/media/:id
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid media ID format",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repos.Media.Delete(ctx, id); err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Media not found",
			})
			return
		}

		logger.Log.Error().
			Err(err).
			Str("media_id", id.String()).
			Msg("Failed to delete media")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "delete_failed",
			Message: "Failed to delete media",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetupMediaRoutes registers media catalog routes
func SetupMediaRoutes(apiGroup *gin.RouterGroup, repos *db.Repositories) {
	handler := NewMediaHandler(repos)

	media := apiGroup.Group("/media")
	media.POST("", handler.CreateMedia)
	media.GET("", handler.ListMedia)
	media.GET("/:id", handler.GetMedia)
	media.PUT("/:id", handler.UpdateMedia)
	media.DELETE("/:id", handler.DeleteMedia)
}
