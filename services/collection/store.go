package collection

import (
	"sync"
	"time"

	"github.com/rescoffi45/glassflix2/models"
)

// Store is the single source of truth for what the user has tagged. Entries
// are keyed by catalog ID with set semantics; insertion order is preserved so
// derived views can break ties by encounter order. All mutations are
// serialized by a mutex, which makes the guard checks in AttachEvents atomic
// with respect to every other mutation.
type Store struct {
	mu       sync.Mutex
	entries  []models.CollectionEntry
	onChange func([]models.CollectionEntry)
}

// NewStore creates an empty collection store.
func NewStore() *Store {
	return &Store{}
}

// OnChange registers the observer notified with a snapshot after every
// mutation. The persistence bridge uses this to write through on each change.
func (s *Store) OnChange(fn func([]models.CollectionEntry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// UpsertStatus tags a record with a status. An existing entry is re-tagged in
// place, preserving its AddedAt timestamp and record fields; a new entry is
// created with AddedAt set to now. Any status other than watchlist strips the
// events and legacy agenda fields.
func (s *Store) UpsertStatus(record models.MediaRecord, status models.CollectionStatus) models.CollectionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(record.ID); idx >= 0 {
		entry := &s.entries[idx]
		entry.Status = status
		if status != models.StatusWatchlist {
			entry.Events = nil
			entry.AgendaDate = ""
			entry.AgendaTitle = ""
		}
		s.notifyLocked()
		return *entry
	}

	entry := models.CollectionEntry{
		MediaRecord: record,
		Status:      status,
		AddedAt:     time.Now().UnixMilli(),
	}
	s.entries = append(s.entries, entry)
	s.notifyLocked()
	return entry
}

// Remove deletes the entry with the given id. Removing an absent id is a
// silent no-op.
func (s *Store) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	s.notifyLocked()
}

// AttachEvents replaces the events of the matching entry, but only if the
// entry still exists and is still on the watchlist. A late enrichment result
// arriving after the entry was removed or re-tagged is dropped; the return
// value reports whether the write was applied.
func (s *Store) AttachEvents(id int64, events []models.AgendaEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 || s.entries[idx].Status != models.StatusWatchlist {
		return false
	}
	s.entries[idx].Events = events
	s.notifyLocked()
	return true
}

// Replace swaps the whole collection, as when importing an exported file. The
// observer is notified so the replacement is persisted.
func (s *Store) Replace(entries []models.CollectionEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]models.CollectionEntry(nil), entries...)
	s.notifyLocked()
}

// Restore swaps the whole collection without notifying the observer. The
// persistence bridge uses it when loading a scope's stored collection, where
// writing straight back would be redundant.
func (s *Store) Restore(entries []models.CollectionEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]models.CollectionEntry(nil), entries...)
}

// Get returns the entry with the given id, if present.
func (s *Store) Get(id int64) (models.CollectionEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.CollectionEntry{}, false
	}
	return s.entries[idx], true
}

// Snapshot returns a copy of the collection in insertion order.
func (s *Store) Snapshot() []models.CollectionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// SeenTitles returns the titles of the most recently added seen entries,
// newest last, capped at limit.
func (s *Store) SeenTitles(limit int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var titles []string
	for _, entry := range s.entries {
		if entry.Status == models.StatusSeen && entry.Title != "" {
			titles = append(titles, entry.Title)
		}
	}
	if limit > 0 && len(titles) > limit {
		titles = titles[len(titles)-limit:]
	}
	return titles
}

func (s *Store) indexOf(id int64) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() []models.CollectionEntry {
	return append([]models.CollectionEntry(nil), s.entries...)
}

func (s *Store) notifyLocked() {
	if s.onChange != nil {
		s.onChange(s.snapshotLocked())
	}
}
