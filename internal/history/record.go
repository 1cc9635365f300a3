package history

// Record is one raw row from a Spotify extended streaming history export.
// Field presence is not guaranteed: the export writes JSON null for
// metadata it doesn't have, so everything optional is a pointer.
type Record struct {
	Timestamp   string  `json:"ts"`
	MsPlayed    *int64  `json:"ms_played"`
	TrackName   *string `json:"master_metadata_track_name"`
	AlbumName   *string `json:"master_metadata_album_album_name"`
	ArtistName  *string `json:"master_metadata_album_artist_name"`
	EpisodeName *string `json:"episode_name"`
	EpisodeShow *string `json:"episode_show_name"`
}

// IsPodcast reports whether the record is a podcast (or other episodic)
// entry rather than music. The export marks these with episode identity
// fields that music rows never carry.
func (r *Record) IsPodcast() bool {
	return (r.EpisodeName != nil && *r.EpisodeName != "") ||
		(r.EpisodeShow != nil && *r.EpisodeShow != "")
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
