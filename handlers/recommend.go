package handlers

import (
	"net/http"

	"github.com/rescoffi45/glassflix2/config"
	"github.com/rescoffi45/glassflix2/services/collection"
	"github.com/rescoffi45/glassflix2/services/recommend"
)

// seenTitleLimit caps how many recent seen titles feed a recommendation
// request.
const seenTitleLimit = 10

// RecommendHandler serves AI-generated recommendations derived from the
// user's seen titles.
type RecommendHandler struct {
	client        *recommend.Client
	store         *collection.Store
	configManager *config.Manager
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(client *recommend.Client, store *collection.Store, configManager *config.Manager) *RecommendHandler {
	return &RecommendHandler{
		client:        client,
		store:         store,
		configManager: configManager,
	}
}

// Generate requests recommendations from the most recent seen titles. With
// nothing seen yet the result is empty and no upstream call is made.
// POST /api/recommendations
func (h *RecommendHandler) Generate(w http.ResponseWriter, r *http.Request) {
	appLanguage := "en"
	if settings, err := h.configManager.Load(); err == nil {
		appLanguage = settings.Language
	}

	titles := h.store.SeenTitles(seenTitleLimit)
	recommendations := h.client.Recommend(r.Context(), titles, appLanguage)
	if recommendations == nil {
		recommendations = []recommend.Recommendation{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"recommendations": recommendations})
}
