package users_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rescoffi45/glassflix2/models"
	"github.com/rescoffi45/glassflix2/services/users"
)

type memoryBlobs struct {
	data    map[string]json.RawMessage
	failing bool
}

func newMemoryBlobs() *memoryBlobs {
	return &memoryBlobs{data: map[string]json.RawMessage{}}
}

func (m *memoryBlobs) GetJSON(key string, out any) (bool, error) {
	if m.failing {
		return false, errors.New("storage offline")
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *memoryBlobs) PutJSON(key string, value any) error {
	if m.failing {
		return errors.New("storage offline")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memoryBlobs) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func TestSignupCreatesAccountWithEmptyCollection(t *testing.T) {
	svc := users.NewService(newMemoryBlobs(), nil)

	result := svc.Signup("ada", "hunter2")
	if !result.Success {
		t.Fatalf("signup failed: %s", result.Message)
	}
	if result.User == nil || result.User.Username != "ada" {
		t.Fatalf("unexpected user %+v", result.User)
	}
	if result.User.Collection == nil || len(result.User.Collection) != 0 {
		t.Fatalf("new account must start with an empty collection, got %v", result.User.Collection)
	}
}

func TestSignupRejectsDuplicateCaseInsensitively(t *testing.T) {
	svc := users.NewService(newMemoryBlobs(), nil)

	if result := svc.Signup("ada", "hunter2"); !result.Success {
		t.Fatalf("first signup failed: %s", result.Message)
	}
	result := svc.Signup("ADA", "other")
	if result.Success {
		t.Fatal("duplicate username accepted")
	}
	if result.Message != "Username already exists" {
		t.Fatalf("unexpected message %q", result.Message)
	}
}

func TestSignupRequiresCredentials(t *testing.T) {
	svc := users.NewService(newMemoryBlobs(), nil)

	for _, pair := range [][2]string{{"", "pw"}, {"   ", "pw"}, {"ada", ""}} {
		result := svc.Signup(pair[0], pair[1])
		if result.Success {
			t.Fatalf("signup %q/%q should fail", pair[0], pair[1])
		}
		if result.Message != "Username and password are required" {
			t.Fatalf("unexpected message %q", result.Message)
		}
	}
}

func TestLoginValidatesPassword(t *testing.T) {
	svc := users.NewService(newMemoryBlobs(), nil)
	svc.Signup("ada", "hunter2")

	if result := svc.Login("ada", "wrong"); result.Success {
		t.Fatal("wrong password accepted")
	} else if result.Message != "Invalid username or password" {
		t.Fatalf("unexpected message %q", result.Message)
	}

	result := svc.Login("Ada", "hunter2")
	if !result.Success {
		t.Fatalf("login failed: %s", result.Message)
	}
	if result.User.Username != "ada" {
		t.Fatalf("login should return the stored account, got %q", result.User.Username)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	svc := users.NewService(newMemoryBlobs(), nil)
	result := svc.Signup("ada", "hunter2")

	if svc.CurrentSession() != nil {
		t.Fatal("expected no session before SetSession")
	}
	if err := svc.SetSession(result.User); err != nil {
		t.Fatal(err)
	}
	user := svc.CurrentSession()
	if user == nil || user.Username != "ada" {
		t.Fatalf("unexpected session user %+v", user)
	}
	if err := svc.ClearSession(); err != nil {
		t.Fatal(err)
	}
	if svc.CurrentSession() != nil {
		t.Fatal("session should be gone after ClearSession")
	}
}

func TestSessionForRemovedAccountIsDropped(t *testing.T) {
	blobs := newMemoryBlobs()
	svc := users.NewService(blobs, nil)
	result := svc.Signup("ada", "hunter2")
	if err := svc.SetSession(result.User); err != nil {
		t.Fatal(err)
	}

	// Wipe the account table; the session pointer is now stale.
	if err := blobs.PutJSON("glassflix_users", []models.User{}); err != nil {
		t.Fatal(err)
	}
	if svc.CurrentSession() != nil {
		t.Fatal("stale session for a removed account must yield nil")
	}
}

func TestSaveCollectionUpdatesAccount(t *testing.T) {
	svc := users.NewService(newMemoryBlobs(), nil)
	svc.Signup("ada", "hunter2")

	entries := []models.CollectionEntry{{
		MediaRecord: models.MediaRecord{ID: 7, Kind: models.MediaKindMovie, Title: "Saved"},
		Status:      models.StatusSeen,
	}}
	if err := svc.SaveCollection("ada", entries); err != nil {
		t.Fatal(err)
	}

	result := svc.Login("ada", "hunter2")
	if len(result.User.Collection) != 1 || result.User.Collection[0].ID != 7 {
		t.Fatalf("collection not persisted: %+v", result.User.Collection)
	}

	// Saving for an unknown account is a no-op, not an error.
	if err := svc.SaveCollection("ghost", entries); err != nil {
		t.Fatal(err)
	}
}

func TestStorageFailureYieldsFriendlyMessage(t *testing.T) {
	blobs := newMemoryBlobs()
	blobs.failing = true
	svc := users.NewService(blobs, nil)

	if result := svc.Signup("ada", "hunter2"); result.Success || result.Message != "Account storage is unavailable" {
		t.Fatalf("unexpected result %+v", result)
	}
	if result := svc.Login("ada", "hunter2"); result.Success || result.Message != "Account storage is unavailable" {
		t.Fatalf("unexpected result %+v", result)
	}
}
