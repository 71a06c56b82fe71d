package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rescoffi45/glassflix2/services/collection"
	"github.com/rescoffi45/glassflix2/services/users"
)

// AuthHandler serves signup, login and session endpoints. Credential
// mistakes surface as messages in the response body, never as raw errors.
type AuthHandler struct {
	users  *users.Service
	bridge *collection.Bridge
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(usersService *users.Service, bridge *collection.Bridge) *AuthHandler {
	return &AuthHandler{
		users:  usersService,
		bridge: bridge,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the sanitized outcome of an auth attempt.
type AuthResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Username string `json:"username,omitempty"`
}

// Signup registers a new account and signs it in.
// POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := h.users.Signup(req.Username, req.Password)
	if !result.Success {
		writeJSON(w, http.StatusOK, AuthResponse{Message: result.Message})
		return
	}

	h.bridge.Login(result.User)
	writeJSON(w, http.StatusOK, AuthResponse{Success: true, Username: result.User.Username})
}

// Login signs an existing account in, swapping the active collection to that
// user's stored one.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := h.users.Login(req.Username, req.Password)
	if !result.Success {
		writeJSON(w, http.StatusOK, AuthResponse{Message: result.Message})
		return
	}

	h.bridge.Login(result.User)
	writeJSON(w, http.StatusOK, AuthResponse{Success: true, Username: result.User.Username})
}

// Logout ends the session and reloads the guest collection.
// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.bridge.Logout()
	writeJSON(w, http.StatusOK, AuthResponse{Success: true})
}

// Session reports the signed-in user, if any.
// GET /api/auth/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	if user := h.users.CurrentSession(); user != nil {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": true, "username": user.Username})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
}
