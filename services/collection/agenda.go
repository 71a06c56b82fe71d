package collection

import (
	"fmt"
	"sort"
	"time"

	"github.com/rescoffi45/glassflix2/models"
)

// Today returns the calendar date in loc, formatted fixed-width so it compares
// lexicographically against event dates. A nil location selects the
// process-local zone.
func Today(loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc).Format("2006-01-02")
}

// Agenda flattens the collection into a single chronologically ascending list
// of upcoming events. Only watchlist entries contribute, and only events dated
// today or later. Entries persisted by older versions carry a single legacy
// date/title pair instead of an event list; those are normalized into one
// synthesized event so old data keeps working. The sort is stable, so events
// on the same date keep their encounter order.
func Agenda(entries []models.CollectionEntry, today string) []models.AgendaItem {
	var items []models.AgendaItem

	for _, entry := range entries {
		if entry.Status != models.StatusWatchlist {
			continue
		}

		if len(entry.Events) > 0 {
			for _, event := range entry.Events {
				if event.Date >= today {
					items = append(items, models.AgendaItem{
						UID:   fmt.Sprintf("%d-%s-%s", entry.ID, event.Date, event.Label),
						Entry: entry,
						Event: event,
					})
				}
			}
			continue
		}

		if entry.AgendaDate != "" && entry.AgendaDate >= today {
			label := entry.AgendaTitle
			if label == "" {
				label = "Upcoming"
			}
			items = append(items, models.AgendaItem{
				UID:   fmt.Sprintf("%d-%s", entry.ID, entry.AgendaDate),
				Entry: entry,
				Event: models.AgendaEvent{
					Date:         entry.AgendaDate,
					Label:        label,
					EpisodeTitle: entry.Title,
					Overview:     entry.Overview,
				},
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Event.Date < items[j].Event.Date
	})
	return items
}
