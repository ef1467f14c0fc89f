package models

import (
	"time"
)

// ChannelType selects which resolution mode applies to a channel.
type ChannelType string

const (
	// ChannelTypeDailySlots schedules content in fixed daily time slots.
	ChannelTypeDailySlots ChannelType = "daily-slots"

	// ChannelTypeLoopingPlaylist repeats an ordered playlist forever,
	// synchronized by epoch time.
	ChannelTypeLoopingPlaylist ChannelType = "looping-playlist"
)

// Valid reports whether t is a known channel type.
func (t ChannelType) Valid() bool {
	return t == ChannelTypeDailySlots || t == ChannelTypeLoopingPlaylist
}

// Channel represents one simulated broadcast channel.
//
// The ID is a caller-chosen opaque string (often a channel number like "3")
// rather than a generated UUID, so that lineup ordering can follow the
// numeric convention viewers expect.
type Channel struct {
	ID        string      `json:"id" gorm:"type:text;primaryKey;column:id" validate:"required"`
	Name      string      `json:"name" gorm:"type:text;not null;column:name" validate:"required,min=1,max=255"`
	Type      ChannelType `json:"type" gorm:"type:text;not null;column:type" validate:"required"`
	Active    bool        `json:"active" gorm:"type:integer;not null;default:1;column:active"`
	CreatedAt time.Time   `json:"created_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:created_at"`
	UpdatedAt time.Time   `json:"updated_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:updated_at"`
}

// NewChannel creates a new Channel with timestamps set.
func NewChannel(id, name string, channelType ChannelType, active bool) *Channel {
	now := time.Now().UTC()
	return &Channel{
		ID:        id,
		Name:      name,
		Type:      channelType,
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
