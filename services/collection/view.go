package collection

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rescoffi45/glassflix2/models"
)

// SortKey selects the field a collection view is ordered by.
type SortKey string

const (
	SortDateAdded   SortKey = "dateAdded"
	SortReleaseDate SortKey = "releaseDate"
	SortRating      SortKey = "rating"
	SortTitle       SortKey = "title"
)

// SortOrder selects ascending or descending order.
type SortOrder string

const (
	OrderAscending  SortOrder = "asc"
	OrderDescending SortOrder = "desc"
)

// Entries without any release date sort as if released on this date, which
// keeps the order total.
const missingDateFallback = "1900-01-01"

// View filters the collection to one status and sorts it by the given key.
// Title sorting uses locale collation for the given language; descending
// order reverses the comparison. The sort is stable.
func View(entries []models.CollectionEntry, status models.CollectionStatus, key SortKey, order SortOrder, lang language.Tag) []models.CollectionEntry {
	filtered := make([]models.CollectionEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Status == status {
			filtered = append(filtered, entry)
		}
	}

	var cmp func(a, b models.CollectionEntry) int
	switch key {
	case SortRating:
		cmp = func(a, b models.CollectionEntry) int {
			switch {
			case a.Rating < b.Rating:
				return -1
			case a.Rating > b.Rating:
				return 1
			}
			return 0
		}
	case SortTitle:
		coll := collate.New(lang)
		cmp = func(a, b models.CollectionEntry) int {
			return coll.CompareString(a.Title, b.Title)
		}
	case SortReleaseDate:
		cmp = func(a, b models.CollectionEntry) int {
			return strings.Compare(releaseDateOrFallback(a), releaseDateOrFallback(b))
		}
	default: // SortDateAdded
		cmp = func(a, b models.CollectionEntry) int {
			switch {
			case a.AddedAt < b.AddedAt:
				return -1
			case a.AddedAt > b.AddedAt:
				return 1
			}
			return 0
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		c := cmp(filtered[i], filtered[j])
		if order == OrderDescending {
			return c > 0
		}
		return c < 0
	})
	return filtered
}

func releaseDateOrFallback(entry models.CollectionEntry) string {
	if entry.ReleaseDate == "" {
		return missingDateFallback
	}
	return entry.ReleaseDate
}
