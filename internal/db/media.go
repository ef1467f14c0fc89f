package db

import (
	"context"
	"fmt"

	"github.com/cathodetv/cathode/internal/models"
	"github.com/google/uuid"
)

// MediaRepository handles database operations for the media catalog
type MediaRepository struct {
	db *DB
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(db *DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// Create inserts a new media entry into the catalog
func (r *MediaRepository) Create(ctx context.Context, media *models.Media) error {
	result := r.db.WithContext(ctx).Create(media)
	if result.Error != nil {
		return fmt.Errorf("failed to create media: %w", MapGormError(result.Error))
	}
	return nil
}

// GetByID retrieves a media entry by its UUID
func (r *MediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	var media models.Media
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&media)
	if result.Error != nil {
		return nil, MapGormError(result.Error)
	}
	return &media, nil
}

// GetByFilePath retrieves a media entry by its file path
func (r *MediaRepository) GetByFilePath(ctx context.Context, filePath string) (*models.Media, error) {
	var media models.Media
	result := r.db.WithContext(ctx).Where("file_path = ?", filePath).First(&media)
	if result.Error != nil {
		return nil, MapGormError(result.Error)
	}
	return &media, nil
}

// List retrieves all media entries ordered by file path
func (r *MediaRepository) List(ctx context.Context) ([]*models.Media, error) {
	var media []*models.Media
	result := r.db.WithContext(ctx).Order("file_path ASC").Find(&media)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list media: %w", MapGormError(result.Error))
	}
	return media, nil
}

// DurationsByFilePath returns known durations for the given content ids
// (file paths) as a single read, used to capture the duration snapshot for
// a resolve call. Paths without a catalog row are simply absent from the
// returned map.
func (r *MediaRepository) DurationsByFilePath(ctx context.Context, filePaths []string) (map[string]int64, error) {
	durations := make(map[string]int64, len(filePaths))
	if len(filePaths) == 0 {
		return durations, nil
	}

	var media []*models.Media
	result := r.db.WithContext(ctx).Where("file_path IN ?", filePaths).Find(&media)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to look up durations: %w", MapGormError(result.Error))
	}

	for _, m := range media {
		durations[m.FilePath] = m.Duration
	}
	return durations, nil
}

// Update updates an existing media entry
func (r *MediaRepository) Update(ctx context.Context, media *models.Media) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", media.ID.String()).
		Select("file_path", "title", "duration", "video_codec", "audio_codec", "playable").
		Updates(media)
	if result.Error != nil {
		return fmt.Errorf("failed to update media: %w", MapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a media entry by its UUID
func (r *MediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&models.Media{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete media: %w", MapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
