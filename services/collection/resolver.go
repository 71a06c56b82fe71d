package collection

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/rescoffi45/glassflix2/models"
	"github.com/rescoffi45/glassflix2/services/catalog"
)

// MovieReleaseLabel is the event label used for upcoming movie releases.
const MovieReleaseLabel = "Movie Release"

type catalogService interface {
	MediaDetail(ctx context.Context, id int64, kind models.MediaKind, locale string) *models.MediaDetail
	SeasonDetail(ctx context.Context, id int64, seasonNumber int, locale string) *models.SeasonDetail
}

var _ catalogService = (*catalog.Client)(nil)

// Resolver computes the future agenda events of a just-watchlisted record and
// attaches them to the store. Enrichment is best effort: it runs as a
// detached task after the status tag has already been applied, tasks for
// different items run independently, and any failure means zero events rather
// than an error. Late completions are dropped by the store's guard.
type Resolver struct {
	catalog catalogService
	store   *Store
	logger  *slog.Logger
	today   func() string
	tasks   conc.WaitGroup
}

// NewResolver creates a resolver that computes "today" as the calendar date
// in the given location. A nil location selects the process-local zone.
func NewResolver(catalogSvc catalogService, store *Store, loc *time.Location, logger *slog.Logger) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		catalog: catalogSvc,
		store:   store,
		logger:  logger,
		today: func() string {
			return Today(loc)
		},
	}
}

// Enqueue schedules enrichment for a record and returns immediately. When the
// caller already holds the full detail record it is used as-is; otherwise the
// catalog is queried first.
func (r *Resolver) Enqueue(record models.MediaRecord, detail *models.MediaDetail, locale string) {
	r.tasks.Go(func() {
		events := r.Resolve(context.Background(), record, detail, locale)
		if len(events) == 0 {
			return
		}
		if !r.store.AttachEvents(record.ID, events) {
			r.logger.Debug("resolver.stale_enrichment_dropped", "id", record.ID)
		}
	})
}

// Wait blocks until every in-flight enrichment task has finished.
func (r *Resolver) Wait() {
	r.tasks.Wait()
}

// Resolve computes the upcoming events for a record. An empty result is a
// valid outcome, not an error: the item may already be released or the
// catalog may have no upcoming data.
func (r *Resolver) Resolve(ctx context.Context, record models.MediaRecord, detail *models.MediaDetail, locale string) []models.AgendaEvent {
	today := r.today()

	switch record.Kind {
	case models.MediaKindMovie:
		if record.ReleaseDate != "" && record.ReleaseDate >= today {
			return []models.AgendaEvent{{
				Date:     record.ReleaseDate,
				Label:    MovieReleaseLabel,
				Overview: record.Overview,
			}}
		}
		return nil

	case models.MediaKindSeries:
		if detail == nil || len(detail.Seasons) == 0 {
			detail = r.catalog.MediaDetail(ctx, record.ID, models.MediaKindSeries, locale)
		}
		if detail == nil || detail.NextEpisode == nil {
			return nil
		}

		season := r.catalog.SeasonDetail(ctx, record.ID, detail.NextEpisode.SeasonNumber, locale)
		if season == nil {
			return nil
		}

		var events []models.AgendaEvent
		for _, ep := range season.Episodes {
			if ep.AirDate == "" || ep.AirDate < today {
				continue
			}
			events = append(events, models.AgendaEvent{
				Date:         ep.AirDate,
				Label:        fmt.Sprintf("S%dE%d", ep.SeasonNumber, ep.EpisodeNumber),
				EpisodeTitle: ep.Name,
				Overview:     ep.Overview,
			})
		}
		return events
	}

	return nil
}
