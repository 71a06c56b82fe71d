package models

// MediaKind discriminates movies from series. It is resolved once when a raw
// catalog payload is normalized and never re-inferred downstream.
type MediaKind string

const (
	MediaKindMovie  MediaKind = "movie"
	MediaKindSeries MediaKind = "series"
)

// Valid reports whether the kind is one of the two supported values.
func (k MediaKind) Valid() bool {
	return k == MediaKindMovie || k == MediaKindSeries
}

// MediaRecord is a catalog item in its normalized shape. ReleaseDate holds the
// theatrical release date for movies and the first air date for series, as a
// fixed-width YYYY-MM-DD string, or empty when the catalog has no date.
type MediaRecord struct {
	ID           int64     `json:"id"`
	Kind         MediaKind `json:"kind"`
	Title        string    `json:"title"`
	PosterPath   string    `json:"posterPath,omitempty"`
	BackdropPath string    `json:"backdropPath,omitempty"`
	Rating       float64   `json:"rating,omitempty"`
	Overview     string    `json:"overview,omitempty"`
	ReleaseDate  string    `json:"releaseDate,omitempty"`
}

// Genre is a catalog genre tag.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Episode describes a single episode of a series season.
type Episode struct {
	ID            int64   `json:"id"`
	SeasonNumber  int     `json:"seasonNumber"`
	EpisodeNumber int     `json:"episodeNumber"`
	Name          string  `json:"name,omitempty"`
	Overview      string  `json:"overview,omitempty"`
	AirDate       string  `json:"airDate,omitempty"` // YYYY-MM-DD
	Runtime       int     `json:"runtime,omitempty"`
	StillPath     string  `json:"stillPath,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
}

// SeasonSummary is the per-season entry carried on a series detail record.
type SeasonSummary struct {
	ID           int64  `json:"id"`
	SeasonNumber int    `json:"seasonNumber"`
	Name         string `json:"name,omitempty"`
	AirDate      string `json:"airDate,omitempty"`
	EpisodeCount int    `json:"episodeCount,omitempty"`
	PosterPath   string `json:"posterPath,omitempty"`
}

// SeasonDetail is a full season lookup including its episode list.
type SeasonDetail struct {
	ID           int64     `json:"id"`
	SeasonNumber int       `json:"seasonNumber"`
	Name         string    `json:"name,omitempty"`
	Overview     string    `json:"overview,omitempty"`
	AirDate      string    `json:"airDate,omitempty"`
	Episodes     []Episode `json:"episodes,omitempty"`
}

// MediaDetail extends a MediaRecord with the fields only present on a full
// detail lookup. Seasons and NextEpisode are populated for series only.
type MediaDetail struct {
	MediaRecord
	Tagline         string          `json:"tagline,omitempty"`
	Runtime         int             `json:"runtime,omitempty"`
	NumberOfSeasons int             `json:"numberOfSeasons,omitempty"`
	Genres          []Genre         `json:"genres,omitempty"`
	Seasons         []SeasonSummary `json:"seasons,omitempty"`
	NextEpisode     *Episode        `json:"nextEpisodeToAir,omitempty"`
}
