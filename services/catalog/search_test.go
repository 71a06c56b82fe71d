package catalog_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rescoffi45/glassflix2/models"
	"github.com/rescoffi45/glassflix2/services/catalog"
)

type scriptedSearcher struct {
	mu      sync.Mutex
	entered map[string]chan struct{}
	blocked map[string]chan struct{}
	results map[string][]models.MediaRecord
}

func (s *scriptedSearcher) SearchMulti(ctx context.Context, query, locale string) []models.MediaRecord {
	s.mu.Lock()
	entered := s.entered[query]
	gate := s.blocked[query]
	s.mu.Unlock()
	if entered != nil {
		close(entered)
	}
	if gate != nil {
		<-gate
	}
	return s.results[query]
}

func TestSearchShortQueryReturnsNothingCurrent(t *testing.T) {
	searcher := catalog.NewSearcher(&scriptedSearcher{})

	records, current := searcher.Search(context.Background(), "  du ", "en-US")
	if records != nil {
		t.Fatalf("short query must not search, got %v", records)
	}
	if !current {
		t.Fatal("short query result is always current")
	}
}

func TestSearchLatestRequestWins(t *testing.T) {
	gate := make(chan struct{})
	entered := make(chan struct{})
	backend := &scriptedSearcher{
		entered: map[string]chan struct{}{"dune part": entered},
		blocked: map[string]chan struct{}{"dune part": gate},
		results: map[string][]models.MediaRecord{
			"dune part":     {{ID: 1, Kind: models.MediaKindMovie, Title: "Dune Part One"}},
			"dune part two": {{ID: 2, Kind: models.MediaKindMovie, Title: "Dune Part Two"}},
		},
	}
	searcher := catalog.NewSearcher(backend)

	type result struct {
		records []models.MediaRecord
		current bool
	}
	slow := make(chan result, 1)
	go func() {
		records, current := searcher.Search(context.Background(), "dune part", "en-US")
		slow <- result{records, current}
	}()

	// Let the slow request reach the backend before issuing the newer one.
	<-entered

	records, current := searcher.Search(context.Background(), "dune part two", "en-US")
	if !current {
		t.Fatal("newest request must be current")
	}
	if len(records) != 1 || records[0].ID != 2 {
		t.Fatalf("unexpected newest results %v", records)
	}

	close(gate)
	got := <-slow
	if got.current {
		t.Fatal("request superseded while in flight must report stale")
	}
	if len(got.records) != 1 || got.records[0].ID != 1 {
		t.Fatalf("stale request should still return its backend results, got %v", got.records)
	}
}

func TestSearchSequentialQueriesStayCurrent(t *testing.T) {
	backend := &scriptedSearcher{
		results: map[string][]models.MediaRecord{
			"alien": {{ID: 3, Kind: models.MediaKindMovie, Title: "Alien"}},
		},
	}
	searcher := catalog.NewSearcher(backend)

	records, current := searcher.Search(context.Background(), "alien", "en-US")
	if !current {
		t.Fatal("uncontested query must be current")
	}
	if len(records) != 1 || records[0].Title != "Alien" {
		t.Fatalf("unexpected results %v", records)
	}
}
