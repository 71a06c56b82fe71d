package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rescoffi45/glassflix2/config"
	"github.com/rescoffi45/glassflix2/services/catalog"
)

// MediaHandler serves detail and season lookups.
type MediaHandler struct {
	catalog       *catalog.Client
	configManager *config.Manager
}

// NewMediaHandler creates a new media handler.
func NewMediaHandler(catalogClient *catalog.Client, configManager *config.Manager) *MediaHandler {
	return &MediaHandler{
		catalog:       catalogClient,
		configManager: configManager,
	}
}

// Detail returns the full detail record for an item.
// GET /api/media/{kind}/{id}
func (h *MediaHandler) Detail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	kind, ok := parseKind(vars["kind"])
	if !ok {
		jsonError(w, "Unknown media kind", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		jsonError(w, "Invalid media id", http.StatusBadRequest)
		return
	}

	locale := localeFromRequest(r, h.configManager)
	detail := h.catalog.MediaDetail(r.Context(), id, kind, locale)
	if detail == nil {
		jsonError(w, "Media not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// Season returns one season of a series with its episode list.
// GET /api/media/{id}/season/{number}
func (h *MediaHandler) Season(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		jsonError(w, "Invalid media id", http.StatusBadRequest)
		return
	}
	number, err := strconv.Atoi(vars["number"])
	if err != nil {
		jsonError(w, "Invalid season number", http.StatusBadRequest)
		return
	}

	locale := localeFromRequest(r, h.configManager)
	season := h.catalog.SeasonDetail(r.Context(), id, number, locale)
	if season == nil {
		jsonError(w, "Season not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, season)
}
