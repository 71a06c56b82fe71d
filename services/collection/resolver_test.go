package collection_test

import (
	"context"
	"testing"
	"time"

	"github.com/rescoffi45/glassflix2/models"
	"github.com/rescoffi45/glassflix2/services/collection"
)

type fakeCatalog struct {
	detail  *models.MediaDetail
	season  *models.SeasonDetail
	started chan struct{}
	release chan struct{}
}

func (f *fakeCatalog) MediaDetail(ctx context.Context, id int64, kind models.MediaKind, locale string) *models.MediaDetail {
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	return f.detail
}

func (f *fakeCatalog) SeasonDetail(ctx context.Context, id int64, seasonNumber int, locale string) *models.SeasonDetail {
	return f.season
}

func TestResolveUpcomingMovieYieldsSingleReleaseEvent(t *testing.T) {
	store := collection.NewStore()
	r := collection.NewResolver(&fakeCatalog{}, store, time.UTC, nil)

	record := models.MediaRecord{
		ID:          10,
		Kind:        models.MediaKindMovie,
		Title:       "Far Future",
		Overview:    "A film that is not out yet.",
		ReleaseDate: "2099-07-04",
	}
	events := r.Resolve(context.Background(), record, nil, "en-US")

	if len(events) != 1 {
		t.Fatalf("expected exactly one event, got %d", len(events))
	}
	if events[0].Label != collection.MovieReleaseLabel {
		t.Fatalf("expected label %q, got %q", collection.MovieReleaseLabel, events[0].Label)
	}
	if events[0].Date != "2099-07-04" || events[0].Overview != record.Overview {
		t.Fatalf("unexpected event %+v", events[0])
	}
}

func TestResolveReleasedMovieYieldsNothing(t *testing.T) {
	store := collection.NewStore()
	r := collection.NewResolver(&fakeCatalog{}, store, time.UTC, nil)

	record := models.MediaRecord{ID: 11, Kind: models.MediaKindMovie, ReleaseDate: "2001-01-01"}
	if events := r.Resolve(context.Background(), record, nil, "en-US"); len(events) != 0 {
		t.Fatalf("expected no events for a released movie, got %v", events)
	}
}

func TestResolveSeriesWithoutNextEpisode(t *testing.T) {
	store := collection.NewStore()
	record := models.MediaRecord{ID: 12, Kind: models.MediaKindSeries, Title: "Ended Show"}
	store.UpsertStatus(record, models.StatusWatchlist)

	cat := &fakeCatalog{detail: &models.MediaDetail{MediaRecord: record}}
	r := collection.NewResolver(cat, store, time.UTC, nil)

	if events := r.Resolve(context.Background(), record, nil, "en-US"); len(events) != 0 {
		t.Fatalf("expected no events for an ended series, got %v", events)
	}
	entry, ok := store.Get(record.ID)
	if !ok || entry.Status != models.StatusWatchlist {
		t.Fatalf("entry should remain watchlisted, got %+v ok=%v", entry, ok)
	}
}

func TestResolveSeriesUpcomingEpisodes(t *testing.T) {
	store := collection.NewStore()
	record := models.MediaRecord{ID: 13, Kind: models.MediaKindSeries, Title: "Ongoing"}

	cat := &fakeCatalog{
		detail: &models.MediaDetail{
			MediaRecord: record,
			NextEpisode: &models.Episode{SeasonNumber: 2, EpisodeNumber: 4},
		},
		season: &models.SeasonDetail{
			SeasonNumber: 2,
			Episodes: []models.Episode{
				{SeasonNumber: 2, EpisodeNumber: 3, Name: "Aired", AirDate: "2001-01-01"},
				{SeasonNumber: 2, EpisodeNumber: 4, Name: "Next", AirDate: "2099-02-10"},
				{SeasonNumber: 2, EpisodeNumber: 5, Name: "Undated"},
				{SeasonNumber: 2, EpisodeNumber: 6, Name: "Finale", AirDate: "2099-02-17"},
			},
		},
	}
	r := collection.NewResolver(cat, store, time.UTC, nil)

	events := r.Resolve(context.Background(), record, nil, "en-US")
	if len(events) != 2 {
		t.Fatalf("expected 2 future episodes, got %d: %v", len(events), events)
	}
	if events[0].Label != "S2E4" || events[0].EpisodeTitle != "Next" {
		t.Fatalf("unexpected first event %+v", events[0])
	}
	if events[1].Label != "S2E6" || events[1].Date != "2099-02-17" {
		t.Fatalf("unexpected second event %+v", events[1])
	}
}

func TestEnqueueDropsEnrichmentAfterRemove(t *testing.T) {
	store := collection.NewStore()
	record := models.MediaRecord{ID: 14, Kind: models.MediaKindSeries, Title: "Ghost"}
	store.UpsertStatus(record, models.StatusWatchlist)

	cat := &fakeCatalog{
		started: make(chan struct{}),
		release: make(chan struct{}),
		detail: &models.MediaDetail{
			MediaRecord: record,
			NextEpisode: &models.Episode{SeasonNumber: 1, EpisodeNumber: 1},
		},
		season: &models.SeasonDetail{
			SeasonNumber: 1,
			Episodes: []models.Episode{
				{SeasonNumber: 1, EpisodeNumber: 1, Name: "Pilot", AirDate: "2099-01-01"},
			},
		},
	}
	r := collection.NewResolver(cat, store, time.UTC, nil)

	r.Enqueue(record, nil, "en-US")
	<-cat.started
	store.Remove(record.ID)
	close(cat.release)
	r.Wait()

	if _, ok := store.Get(record.ID); ok {
		t.Fatal("removed entry must not be resurrected by late enrichment")
	}
}
