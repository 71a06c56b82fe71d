package handlers

import (
	"math/rand/v2"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rescoffi45/glassflix2/config"
	"github.com/rescoffi45/glassflix2/models"
	"github.com/rescoffi45/glassflix2/services/catalog"
)

// heroItemCount is how many trending items the landing slider shows.
const heroItemCount = 4

// DiscoverHandler serves trending and discover listings.
type DiscoverHandler struct {
	catalog       *catalog.Client
	configManager *config.Manager
}

// NewDiscoverHandler creates a new discover handler.
func NewDiscoverHandler(catalogClient *catalog.Client, configManager *config.Manager) *DiscoverHandler {
	return &DiscoverHandler{
		catalog:       catalogClient,
		configManager: configManager,
	}
}

// Trending returns this week's mixed trending items.
// GET /api/discover/trending
func (h *DiscoverHandler) Trending(w http.ResponseWriter, r *http.Request) {
	locale := localeFromRequest(r, h.configManager)
	records := h.catalog.Trending(r.Context(), locale)
	writeJSON(w, http.StatusOK, map[string]any{"results": records})
}

// Hero returns a random sample of trending items for the landing slider.
// GET /api/discover/hero
func (h *DiscoverHandler) Hero(w http.ResponseWriter, r *http.Request) {
	locale := localeFromRequest(r, h.configManager)
	records := h.catalog.Trending(r.Context(), locale)

	rand.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})
	if len(records) > heroItemCount {
		records = records[:heroItemCount]
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": records})
}

// ByKind returns trending items of one kind, optionally narrowed to a time
// window or an origin country. A country filter switches from the trending
// feed to the discover feed, mirroring how the catalog API splits the two.
// GET /api/discover/{kind}?window=day|week&country=XX
func (h *DiscoverHandler) ByKind(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKind(mux.Vars(r)["kind"])
	if !ok {
		jsonError(w, "Unknown media kind", http.StatusBadRequest)
		return
	}

	locale := localeFromRequest(r, h.configManager)
	country := r.URL.Query().Get("country")

	var records []models.MediaRecord
	if country != "" {
		records = h.catalog.Discover(r.Context(), kind, country, locale)
	} else {
		window := catalog.Window(r.URL.Query().Get("window"))
		if window == "" {
			window = catalog.WindowDay
		}
		records = h.catalog.TrendingByKind(r.Context(), kind, window, locale)
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": records})
}

func parseKind(raw string) (models.MediaKind, bool) {
	switch raw {
	case "movie":
		return models.MediaKindMovie, true
	case "series", "tv":
		return models.MediaKindSeries, true
	}
	return "", false
}

// localeFromRequest picks the catalog locale: an explicit query parameter
// wins, otherwise the configured app language decides.
func localeFromRequest(r *http.Request, manager *config.Manager) string {
	if locale := r.URL.Query().Get("locale"); locale != "" {
		return locale
	}
	settings, err := manager.Load()
	if err != nil {
		return "en-US"
	}
	return settings.CatalogLocale()
}
