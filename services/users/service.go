package users

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rescoffi45/glassflix2/models"
)

const (
	// usersKey is the blob key holding the full account table.
	usersKey = "glassflix_users"
	// sessionKey is the blob key holding the current-session pointer.
	sessionKey = "glassflix_current_user"
)

type blobStore interface {
	GetJSON(key string, out any) (bool, error)
	PutJSON(key string, value any) error
	Delete(key string) error
}

// Service manages account records and the current session. Signup and login
// failures are ordinary results carrying a user-visible message, never errors.
type Service struct {
	mu     sync.Mutex
	blobs  blobStore
	logger *slog.Logger
}

// NewService creates a users service backed by the given blob store.
func NewService(blobs blobStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{blobs: blobs, logger: logger}
}

// Signup registers a new account with an empty collection. Usernames are
// unique case-insensitively.
func (s *Service) Signup(username, password string) models.AuthResult {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.AuthResult{Message: "Username and password are required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		s.logger.Warn("users.load_failed", "error", err)
		return models.AuthResult{Message: "Account storage is unavailable"}
	}

	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return models.AuthResult{Message: "Username already exists"}
		}
	}

	user := models.User{
		Username:   username,
		Password:   password,
		Collection: []models.CollectionEntry{},
	}
	users = append(users, user)
	if err := s.save(users); err != nil {
		s.logger.Warn("users.save_failed", "error", err)
		return models.AuthResult{Message: "Account storage is unavailable"}
	}

	return models.AuthResult{Success: true, User: &user}
}

// Login checks the supplied credentials against the account table.
func (s *Service) Login(username, password string) models.AuthResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		s.logger.Warn("users.load_failed", "error", err)
		return models.AuthResult{Message: "Account storage is unavailable"}
	}

	for i := range users {
		if strings.EqualFold(users[i].Username, username) && users[i].Password == password {
			user := users[i]
			return models.AuthResult{Success: true, User: &user}
		}
	}
	return models.AuthResult{Message: "Invalid username or password"}
}

// SaveCollection replaces the stored collection of the named account.
func (s *Service) SaveCollection(username string, entries []models.CollectionEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Username == username {
			users[i].Collection = entries
			return s.save(users)
		}
	}
	// Account deleted out from under the session; nothing to update.
	return nil
}

// CurrentSession returns the signed-in user, or nil. The session pointer is
// re-validated against the account table rather than trusted blindly, so a
// stale pointer to a removed account yields no session and the returned
// collection is always the freshest stored copy.
func (s *Service) CurrentSession() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	var session models.Session
	ok, err := s.blobs.GetJSON(sessionKey, &session)
	if err != nil {
		s.logger.Warn("users.session_load_failed", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	users, err := s.load()
	if err != nil {
		s.logger.Warn("users.load_failed", "error", err)
		return nil
	}
	for i := range users {
		if users[i].Username == session.Username {
			user := users[i]
			return &user
		}
	}
	return nil
}

// SetSession records the given user as the current session.
func (s *Service) SetSession(user *models.User) error {
	return s.blobs.PutJSON(sessionKey, models.Session{
		Username: user.Username,
		Token:    uuid.NewString(),
	})
}

// ClearSession removes the current-session pointer.
func (s *Service) ClearSession() error {
	return s.blobs.Delete(sessionKey)
}

func (s *Service) load() ([]models.User, error) {
	var users []models.User
	if _, err := s.blobs.GetJSON(usersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) save(users []models.User) error {
	return s.blobs.PutJSON(usersKey, users)
}
