package catalog

import "github.com/rescoffi45/glassflix2/models"

type rawGenre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type rawEpisode struct {
	ID            int64   `json:"id"`
	SeasonNumber  int     `json:"season_number"`
	EpisodeNumber int     `json:"episode_number"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	AirDate       string  `json:"air_date"`
	Runtime       int     `json:"runtime"`
	StillPath     string  `json:"still_path"`
	VoteAverage   float64 `json:"vote_average"`
}

type rawSeason struct {
	ID           int64  `json:"id"`
	SeasonNumber int    `json:"season_number"`
	Name         string `json:"name"`
	AirDate      string `json:"air_date"`
	EpisodeCount int    `json:"episode_count"`
	PosterPath   string `json:"poster_path"`
}

type rawDetail struct {
	RawResult
	Tagline          string      `json:"tagline"`
	Runtime          int         `json:"runtime"`
	NumberOfSeasons  int         `json:"number_of_seasons"`
	Genres           []rawGenre  `json:"genres"`
	Seasons          []rawSeason `json:"seasons"`
	NextEpisodeToAir *rawEpisode `json:"next_episode_to_air"`
}

type rawSeasonDetail struct {
	ID           int64        `json:"id"`
	SeasonNumber int          `json:"season_number"`
	Name         string       `json:"name"`
	Overview     string       `json:"overview"`
	AirDate      string       `json:"air_date"`
	Episodes     []rawEpisode `json:"episodes"`
}

func (r rawDetail) toDetail(kind models.MediaKind) *models.MediaDetail {
	detail := &models.MediaDetail{
		MediaRecord:     normalizeAs(r.RawResult, kind),
		Tagline:         r.Tagline,
		Runtime:         r.Runtime,
		NumberOfSeasons: r.NumberOfSeasons,
	}
	for _, g := range r.Genres {
		detail.Genres = append(detail.Genres, models.Genre{ID: g.ID, Name: g.Name})
	}
	for _, s := range r.Seasons {
		detail.Seasons = append(detail.Seasons, models.SeasonSummary{
			ID:           s.ID,
			SeasonNumber: s.SeasonNumber,
			Name:         s.Name,
			AirDate:      s.AirDate,
			EpisodeCount: s.EpisodeCount,
			PosterPath:   s.PosterPath,
		})
	}
	if r.NextEpisodeToAir != nil {
		episode := r.NextEpisodeToAir.toEpisode()
		detail.NextEpisode = &episode
	}
	return detail
}

func (r rawSeasonDetail) toSeasonDetail() *models.SeasonDetail {
	detail := &models.SeasonDetail{
		ID:           r.ID,
		SeasonNumber: r.SeasonNumber,
		Name:         r.Name,
		Overview:     r.Overview,
		AirDate:      r.AirDate,
	}
	for _, e := range r.Episodes {
		detail.Episodes = append(detail.Episodes, e.toEpisode())
	}
	return detail
}

func (r rawEpisode) toEpisode() models.Episode {
	return models.Episode{
		ID:            r.ID,
		SeasonNumber:  r.SeasonNumber,
		EpisodeNumber: r.EpisodeNumber,
		Name:          r.Name,
		Overview:      r.Overview,
		AirDate:       r.AirDate,
		Runtime:       r.Runtime,
		StillPath:     r.StillPath,
		Rating:        r.VoteAverage,
	}
}
