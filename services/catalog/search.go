package catalog

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/rescoffi45/glassflix2/models"
)

// Queries shorter than this return nothing instead of hitting the catalog.
const minQueryLength = 3

type multiSearcher interface {
	SearchMulti(ctx context.Context, query, locale string) []models.MediaRecord
}

var _ multiSearcher = (*Client)(nil)

// Searcher runs catalog searches with latest-request-wins semantics. Each
// query is tagged with a monotonically increasing sequence number; a response
// is current only if no newer query was issued while it was in flight, so a
// slow stale response can never clobber the results of a newer one.
type Searcher struct {
	catalog multiSearcher
	latest  atomic.Uint64
}

// NewSearcher creates a searcher on top of the given catalog.
func NewSearcher(catalog multiSearcher) *Searcher {
	return &Searcher{catalog: catalog}
}

// Search issues the query and reports whether the results are still current.
// Callers must discard results when current is false.
func (s *Searcher) Search(ctx context.Context, query, locale string) (records []models.MediaRecord, current bool) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLength {
		return nil, true
	}

	seq := s.latest.Add(1)
	records = s.catalog.SearchMulti(ctx, query, locale)
	return records, s.latest.Load() == seq
}
