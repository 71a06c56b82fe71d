package models

// CollectionStatus tags a collection entry as still-to-watch or already seen.
type CollectionStatus string

const (
	StatusWatchlist CollectionStatus = "watchlist"
	StatusSeen      CollectionStatus = "seen"
)

// Valid reports whether the status is one of the two supported values.
func (s CollectionStatus) Valid() bool {
	return s == StatusWatchlist || s == StatusSeen
}

// AgendaEvent is one future date-bound occurrence tied to a collection entry,
// such as a movie release or an episode airing. Date is a fixed-width
// YYYY-MM-DD string, so lexicographic comparison is chronological comparison.
type AgendaEvent struct {
	Date         string `json:"date"`
	Label        string `json:"label"` // "Movie Release" or "S{season}E{episode}"
	EpisodeTitle string `json:"episodeTitle,omitempty"`
	Overview     string `json:"overview,omitempty"`
}

// CollectionEntry is a media record augmented with the user's tracking state.
// AddedAt is set once on creation (unix milliseconds) and survives status
// changes. Events is present only while the entry is on the watchlist.
//
// AgendaDate and AgendaTitle are the legacy single-event fields written by
// older exports; they are normalized into Events on read and stripped on any
// status change, the same as Events.
type CollectionEntry struct {
	MediaRecord
	Status      CollectionStatus `json:"status"`
	AddedAt     int64            `json:"addedAt"`
	Events      []AgendaEvent    `json:"events,omitempty"`
	AgendaDate  string           `json:"agendaDate,omitempty"`
	AgendaTitle string           `json:"agendaTitle,omitempty"`
}

// AgendaItem pairs a collection entry with one of its upcoming events. UID is
// a stable synthetic identity derived from the entry id, event date and label,
// suitable for list-rendering deduplication.
type AgendaItem struct {
	UID   string          `json:"uid"`
	Entry CollectionEntry `json:"entry"`
	Event AgendaEvent     `json:"event"`
}
