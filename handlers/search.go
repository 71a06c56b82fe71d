package handlers

import (
	"net/http"

	"github.com/rescoffi45/glassflix2/config"
	"github.com/rescoffi45/glassflix2/models"
	"github.com/rescoffi45/glassflix2/services/catalog"
)

// SearchHandler serves multi-search queries with latest-request-wins
// semantics: a response that was overtaken by a newer query is flagged stale
// so the presentation layer discards it.
type SearchHandler struct {
	searcher      *catalog.Searcher
	configManager *config.Manager
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searcher *catalog.Searcher, configManager *config.Manager) *SearchHandler {
	return &SearchHandler{
		searcher:      searcher,
		configManager: configManager,
	}
}

// SearchResponse is the JSON response for a search query.
type SearchResponse struct {
	Query   string               `json:"query"`
	Results []models.MediaRecord `json:"results"`
	Stale   bool                 `json:"stale"`
}

// Search runs a multi search.
// GET /api/search?q=
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	locale := localeFromRequest(r, h.configManager)

	records, current := h.searcher.Search(r.Context(), query, locale)
	if records == nil {
		records = []models.MediaRecord{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{
		Query:   query,
		Results: records,
		Stale:   !current,
	})
}
