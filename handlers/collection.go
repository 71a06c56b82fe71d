package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/text/language"

	"github.com/rescoffi45/glassflix2/config"
	"github.com/rescoffi45/glassflix2/models"
	"github.com/rescoffi45/glassflix2/services/collection"
	"github.com/rescoffi45/glassflix2/services/transfer"
)

// maxImportBytes bounds the accepted size of an import payload.
const maxImportBytes = 8 << 20

// CollectionHandler serves the collection, its derived views and the upcoming
// agenda.
type CollectionHandler struct {
	store         *collection.Store
	resolver      *collection.Resolver
	configManager *config.Manager
	location      *time.Location
}

// NewCollectionHandler creates a new collection handler. The location fixes
// which calendar date counts as "today" for agenda filtering.
func NewCollectionHandler(store *collection.Store, resolver *collection.Resolver, configManager *config.Manager, location *time.Location) *CollectionHandler {
	return &CollectionHandler{
		store:         store,
		resolver:      resolver,
		configManager: configManager,
		location:      location,
	}
}

// UpsertRequest tags a media record with a collection status. Detail may
// carry the already-fetched full record so enrichment can skip a lookup.
type UpsertRequest struct {
	Record models.MediaRecord      `json:"record"`
	Status models.CollectionStatus `json:"status"`
	Detail *models.MediaDetail     `json:"detail,omitempty"`
}

// Upsert tags a record. The status change applies synchronously; for
// watchlist tags, event enrichment runs as a detached follow-up task.
// POST /api/collection
func (h *CollectionHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !req.Status.Valid() {
		jsonError(w, "Unknown collection status", http.StatusBadRequest)
		return
	}
	if !req.Record.Kind.Valid() {
		jsonError(w, "Record is missing its media kind", http.StatusBadRequest)
		return
	}

	entry := h.store.UpsertStatus(req.Record, req.Status)
	if req.Status == models.StatusWatchlist {
		h.resolver.Enqueue(req.Record, req.Detail, localeFromRequest(r, h.configManager))
	}
	writeJSON(w, http.StatusOK, entry)
}

// Remove deletes an entry. Removing an absent id succeeds quietly.
// DELETE /api/collection/{id}
func (h *CollectionHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		jsonError(w, "Invalid entry id", http.StatusBadRequest)
		return
	}
	h.store.Remove(id)
	w.WriteHeader(http.StatusNoContent)
}

// List returns the entries with one status, sorted for presentation. Order
// defaults to descending, matching the filter bar's default when a sort key
// is first selected.
// GET /api/collection?status=&sort=&order=
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	status := models.CollectionStatus(r.URL.Query().Get("status"))
	if !status.Valid() {
		jsonError(w, "Unknown collection status", http.StatusBadRequest)
		return
	}

	key := collection.SortKey(r.URL.Query().Get("sort"))
	switch key {
	case collection.SortDateAdded, collection.SortReleaseDate, collection.SortRating, collection.SortTitle:
	case "":
		key = collection.SortDateAdded
	default:
		jsonError(w, "Unknown sort key", http.StatusBadRequest)
		return
	}

	order := collection.SortOrder(r.URL.Query().Get("order"))
	if order != collection.OrderAscending {
		order = collection.OrderDescending
	}

	entries := collection.View(h.store.Snapshot(), status, key, order, h.collationTag())
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

// Agenda returns the flattened, chronologically ascending upcoming events.
// GET /api/agenda
func (h *CollectionHandler) Agenda(w http.ResponseWriter, r *http.Request) {
	today := collection.Today(h.location)
	items := collection.Agenda(h.store.Snapshot(), today)
	if items == nil {
		items = []models.AgendaItem{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"today": today, "items": items})
}

// Export serializes the active collection verbatim as a downloadable JSON
// array.
// GET /api/collection/export
func (h *CollectionHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := transfer.Encode(h.store.Snapshot())
	if err != nil {
		jsonError(w, "Failed to export collection: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="glassflix-collection.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Import replaces the active collection wholesale with a validated JSON
// array. A malformed payload leaves the collection unmodified.
// POST /api/collection/import
func (h *CollectionHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		jsonError(w, "Failed to read import payload", http.StatusBadRequest)
		return
	}

	entries, err := transfer.Decode(data)
	if err != nil {
		if errors.Is(err, transfer.ErrInvalidPayload) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, "Failed to import collection", http.StatusInternalServerError)
		return
	}

	h.store.Replace(entries)
	writeJSON(w, http.StatusOK, map[string]any{"imported": len(entries)})
}

func (h *CollectionHandler) collationTag() language.Tag {
	settings, err := h.configManager.Load()
	if err != nil {
		return language.English
	}
	if settings.Language == "fr" {
		return language.French
	}
	return language.English
}
