package channel

import "errors"

// Custom channel service errors
var (
	// ErrChannelNotFound indicates the requested channel does not exist
	ErrChannelNotFound = errors.New("channel not found")

	// ErrDuplicateChannel indicates a channel with the same id or name already exists
	ErrDuplicateChannel = errors.New("channel already exists")

	// ErrInvalidChannelID indicates the channel id is empty
	ErrInvalidChannelID = errors.New("channel id must not be empty")

	// ErrInvalidChannelType indicates the channel type is not a known mode
	ErrInvalidChannelType = errors.New("channel type must be daily-slots or looping-playlist")

	// ErrWrongChannelType indicates an operation that only applies to the
	// other scheduling mode (e.g. editing slots on a looping channel)
	ErrWrongChannelType = errors.New("operation does not apply to this channel type")

	// ErrMediaNotFound indicates the referenced media catalog entry does not exist
	ErrMediaNotFound = errors.New("media not found")

	// ErrPlaylistItemNotFound indicates the requested playlist item does not exist
	ErrPlaylistItemNotFound = errors.New("playlist item not found")

	// ErrInvalidPosition indicates the position is negative
	ErrInvalidPosition = errors.New("position must be non-negative")
)

// IsChannelNotFound checks if the error is a channel not found error
func IsChannelNotFound(err error) bool {
	return errors.Is(err, ErrChannelNotFound)
}

// IsDuplicateChannel checks if the error is a duplicate channel error
func IsDuplicateChannel(err error) bool {
	return errors.Is(err, ErrDuplicateChannel)
}

// IsWrongChannelType checks if the error is a wrong channel type error
func IsWrongChannelType(err error) bool {
	return errors.Is(err, ErrWrongChannelType)
}

// IsMediaNotFound checks if the error is a media not found error
func IsMediaNotFound(err error) bool {
	return errors.Is(err, ErrMediaNotFound)
}

// IsPlaylistItemNotFound checks if the error is a playlist item not found error
func IsPlaylistItemNotFound(err error) bool {
	return errors.Is(err, ErrPlaylistItemNotFound)
}
