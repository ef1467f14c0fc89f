package db

// Repositories provides access to all database repositories
type Repositories struct {
	Channels      *ChannelRepository
	Slots         *SlotRepository
	PlaylistItems *PlaylistItemRepository
	Media         *MediaRepository
}

// NewRepositories creates a new repository collection
func NewRepositories(db *DB) *Repositories {
	return &Repositories{
		Channels:      NewChannelRepository(db),
		Slots:         NewSlotRepository(db),
		PlaylistItems: NewPlaylistItemRepository(db),
		Media:         NewMediaRepository(db),
	}
}
