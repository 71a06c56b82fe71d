package database_test

import (
	"path/filepath"
	"testing"

	"github.com/rescoffi45/glassflix2/internal/database"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.NewDB(database.Config{
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBlobPutGetRoundTrip(t *testing.T) {
	db := newTestDB(t)

	if err := db.Blobs.Put("greeting", []byte(`{"hello":"world"}`)); err != nil {
		t.Fatal(err)
	}
	raw, ok, err := db.Blobs.Get("greeting")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected blob to exist")
	}
	if string(raw) != `{"hello":"world"}` {
		t.Fatalf("unexpected value %s", raw)
	}
}

func TestBlobGetMissingKey(t *testing.T) {
	db := newTestDB(t)

	_, ok, err := db.Blobs.Get("absent")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("missing keys must report not found, not an error")
	}
}

func TestBlobPutOverwrites(t *testing.T) {
	db := newTestDB(t)

	if err := db.Blobs.Put("k", []byte(`"first"`)); err != nil {
		t.Fatal(err)
	}
	if err := db.Blobs.Put("k", []byte(`"second"`)); err != nil {
		t.Fatal(err)
	}
	raw, ok, err := db.Blobs.Get("k")
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if string(raw) != `"second"` {
		t.Fatalf("expected overwrite, got %s", raw)
	}
}

func TestBlobDelete(t *testing.T) {
	db := newTestDB(t)

	if err := db.Blobs.Put("k", []byte("1")); err != nil {
		t.Fatal(err)
	}
	if err := db.Blobs.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := db.Blobs.Get("k"); ok {
		t.Fatal("blob should be gone after delete")
	}
	// Deleting an absent key is a no-op.
	if err := db.Blobs.Delete("k"); err != nil {
		t.Fatal(err)
	}
}

func TestBlobJSONHelpers(t *testing.T) {
	db := newTestDB(t)

	type profile struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := db.Blobs.PutJSON("profile", profile{Name: "ada", Count: 3}); err != nil {
		t.Fatal(err)
	}

	var got profile
	ok, err := db.Blobs.GetJSON("profile", &got)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected blob to exist")
	}
	if got.Name != "ada" || got.Count != 3 {
		t.Fatalf("unexpected value %+v", got)
	}

	var missing profile
	ok, err = db.Blobs.GetJSON("absent", &missing)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("missing keys must report not found")
	}
}

func TestReopenPreservesData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	db, err := database.NewDB(database.Config{DatabasePath: path})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Blobs.Put("k", []byte(`"kept"`)); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	db, err = database.NewDB(database.Config{DatabasePath: path})
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	raw, ok, err := db.Blobs.Get("k")
	if err != nil || !ok {
		t.Fatalf("get failed after reopen: ok=%v err=%v", ok, err)
	}
	if string(raw) != `"kept"` {
		t.Fatalf("unexpected value %s", raw)
	}
}
