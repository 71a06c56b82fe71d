package catalog

import "github.com/rescoffi45/glassflix2/models"

// RawResult is the wire shape of one catalog result as returned by trending,
// search and detail endpoints. Movies carry title/release_date, series carry
// name/first_air_date; media_type is only present on mixed endpoints.
type RawResult struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type,omitempty"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	VoteAverage  float64 `json:"vote_average,omitempty"`
	Overview     string  `json:"overview,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
}

type rawPage struct {
	Page         int         `json:"page"`
	Results      []RawResult `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

// Normalize converts a raw catalog payload into a MediaRecord with the kind
// discriminant resolved. An explicit media_type tag wins; otherwise a payload
// with a movie title field is a movie and anything else is a series. Person
// results are rejected (second return value false).
func Normalize(raw RawResult) (models.MediaRecord, bool) {
	var kind models.MediaKind
	switch raw.MediaType {
	case "movie":
		kind = models.MediaKindMovie
	case "tv":
		kind = models.MediaKindSeries
	case "person":
		return models.MediaRecord{}, false
	default:
		if raw.Title != "" {
			kind = models.MediaKindMovie
		} else {
			kind = models.MediaKindSeries
		}
	}
	return normalizeAs(raw, kind), true
}

// NormalizeAll normalizes a result page, dropping non-media entries.
func NormalizeAll(raws []RawResult) []models.MediaRecord {
	records := make([]models.MediaRecord, 0, len(raws))
	for _, raw := range raws {
		if record, ok := Normalize(raw); ok {
			records = append(records, record)
		}
	}
	return records
}

// NormalizeAllAs normalizes results from a kind-specific endpoint, where the
// payloads carry no media_type and the request itself fixes the kind.
func NormalizeAllAs(raws []RawResult, kind models.MediaKind) []models.MediaRecord {
	records := make([]models.MediaRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, normalizeAs(raw, kind))
	}
	return records
}

func normalizeAs(raw RawResult, kind models.MediaKind) models.MediaRecord {
	title := raw.Title
	date := raw.ReleaseDate
	if kind == models.MediaKindSeries {
		title = raw.Name
		date = raw.FirstAirDate
	}
	if title == "" {
		if raw.Title != "" {
			title = raw.Title
		} else {
			title = raw.Name
		}
	}
	if date == "" {
		if raw.ReleaseDate != "" {
			date = raw.ReleaseDate
		} else {
			date = raw.FirstAirDate
		}
	}
	return models.MediaRecord{
		ID:           raw.ID,
		Kind:         kind,
		Title:        title,
		PosterPath:   raw.PosterPath,
		BackdropPath: raw.BackdropPath,
		Rating:       raw.VoteAverage,
		Overview:     raw.Overview,
		ReleaseDate:  date,
	}
}
