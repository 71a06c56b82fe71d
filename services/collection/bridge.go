package collection

import (
	"log/slog"
	"sync"

	"github.com/rescoffi45/glassflix2/models"
)

// guestCollectionKey is the blob key holding the guest-scoped collection.
const guestCollectionKey = "glassflix_collection"

type blobStore interface {
	GetJSON(key string, out any) (bool, error)
	PutJSON(key string, value any) error
}

type sessionStore interface {
	CurrentSession() *models.User
	SetSession(user *models.User) error
	ClearSession() error
	SaveCollection(username string, entries []models.CollectionEntry) error
}

// Bridge binds the active scope, guest or signed-in user, to durable storage.
// It observes every store mutation and writes the whole collection through to
// whichever scope is active. Switching scope swaps the collection wholesale;
// guest and user collections are never merged.
type Bridge struct {
	store  *Store
	blobs  blobStore
	users  sessionStore
	logger *slog.Logger

	mu     sync.Mutex
	active string // signed-in username, empty for guest
}

// NewBridge wires a bridge to the store's change feed.
func NewBridge(store *Store, blobs blobStore, users sessionStore, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bridge{
		store:  store,
		blobs:  blobs,
		users:  users,
		logger: logger,
	}
	store.OnChange(b.persist)
	return b
}

// Start loads the collection for whichever scope is recoverable: the session
// user's stored collection when a session survives, otherwise the guest blob,
// defaulting to empty when absent.
func (b *Bridge) Start() {
	if user := b.users.CurrentSession(); user != nil {
		b.setActive(user.Username)
		b.store.Restore(user.Collection)
		b.logger.Info("bridge.session_restored", "username", user.Username)
		return
	}
	b.setActive("")
	b.loadGuest()
}

// Login switches the active scope to the user's collection and records the
// session.
func (b *Bridge) Login(user *models.User) {
	if err := b.users.SetSession(user); err != nil {
		b.logger.Warn("bridge.set_session_failed", "username", user.Username, "error", err)
	}
	b.setActive(user.Username)
	b.store.Restore(user.Collection)
}

// Logout clears the session, discards the user collection from memory and
// reloads the guest blob fresh.
func (b *Bridge) Logout() {
	if err := b.users.ClearSession(); err != nil {
		b.logger.Warn("bridge.clear_session_failed", "error", err)
	}
	b.setActive("")
	b.loadGuest()
}

// ActiveUser returns the signed-in username, or empty when the guest scope is
// active.
func (b *Bridge) ActiveUser() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}

func (b *Bridge) setActive(username string) {
	b.mu.Lock()
	b.active = username
	b.mu.Unlock()
}

func (b *Bridge) loadGuest() {
	var entries []models.CollectionEntry
	if _, err := b.blobs.GetJSON(guestCollectionKey, &entries); err != nil {
		b.logger.Warn("bridge.guest_load_failed", "error", err)
		entries = nil
	}
	b.store.Restore(entries)
}

func (b *Bridge) persist(entries []models.CollectionEntry) {
	active := b.ActiveUser()
	if active != "" {
		if err := b.users.SaveCollection(active, entries); err != nil {
			b.logger.Warn("bridge.user_persist_failed", "username", active, "error", err)
		}
		return
	}
	if err := b.blobs.PutJSON(guestCollectionKey, entries); err != nil {
		b.logger.Warn("bridge.guest_persist_failed", "error", err)
	}
}
