package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles every HTTP handler for route registration.
type Handlers struct {
	Discover   *DiscoverHandler
	Media      *MediaHandler
	Search     *SearchHandler
	Collection *CollectionHandler
	Auth       *AuthHandler
	Recommend  *RecommendHandler
}

// Register wires all application routes onto the router.
func (h *Handlers) Register(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/discover/trending", h.Discover.Trending).Methods(http.MethodGet)
	api.HandleFunc("/discover/hero", h.Discover.Hero).Methods(http.MethodGet)
	api.HandleFunc("/discover/{kind}", h.Discover.ByKind).Methods(http.MethodGet)

	api.HandleFunc("/search", h.Search.Search).Methods(http.MethodGet)

	api.HandleFunc("/media/{id:[0-9]+}/season/{number:[0-9]+}", h.Media.Season).Methods(http.MethodGet)
	api.HandleFunc("/media/{kind}/{id:[0-9]+}", h.Media.Detail).Methods(http.MethodGet)

	api.HandleFunc("/collection/export", h.Collection.Export).Methods(http.MethodGet)
	api.HandleFunc("/collection/import", h.Collection.Import).Methods(http.MethodPost)
	api.HandleFunc("/collection/{id:[0-9]+}", h.Collection.Remove).Methods(http.MethodDelete)
	api.HandleFunc("/collection", h.Collection.Upsert).Methods(http.MethodPost)
	api.HandleFunc("/collection", h.Collection.List).Methods(http.MethodGet)
	api.HandleFunc("/agenda", h.Collection.Agenda).Methods(http.MethodGet)

	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.Auth.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/session", h.Auth.Session).Methods(http.MethodGet)

	api.HandleFunc("/recommendations", h.Recommend.Generate).Methods(http.MethodPost)
}
