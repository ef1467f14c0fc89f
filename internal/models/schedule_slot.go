package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleSlot is a single daily appointment on a daily-slots channel.
//
// Start and end times are stored exactly as authored ("HH:MM" or
// "HH:MM:SS"); parsing and validation happen at resolve time so that one
// bad admin edit never blanks the whole channel. An end time numerically
// at or before the start time means the slot crosses midnight.
type ScheduleSlot struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primaryKey;column:id"`
	ChannelID string    `json:"channel_id" gorm:"type:text;not null;column:channel_id" validate:"required"`
	Position  int       `json:"position" gorm:"type:integer;not null;column:position" validate:"gte=0"`
	StartTime string    `json:"start_time" gorm:"type:text;not null;column:start_time" validate:"required"`
	EndTime   string    `json:"end_time" gorm:"type:text;not null;column:end_time" validate:"required"`
	ContentID string    `json:"content_id" gorm:"type:text;not null;column:content_id" validate:"required"`
	Title     *string   `json:"title,omitempty" gorm:"type:text;column:title"`
	CreatedAt time.Time `json:"created_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:created_at"`
}

// NewScheduleSlot creates a new ScheduleSlot with generated UUID and timestamp.
func NewScheduleSlot(channelID string, position int, startTime, endTime, contentID string) *ScheduleSlot {
	return &ScheduleSlot{
		ID:        uuid.New(),
		ChannelID: channelID,
		Position:  position,
		StartTime: startTime,
		EndTime:   endTime,
		ContentID: contentID,
		CreatedAt: time.Now().UTC(),
	}
}
