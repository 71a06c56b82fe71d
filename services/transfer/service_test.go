package transfer_test

import (
	"errors"
	"testing"

	"github.com/spf13/afero"

	"github.com/rescoffi45/glassflix2/models"
	"github.com/rescoffi45/glassflix2/services/transfer"
)

func sampleEntries() []models.CollectionEntry {
	return []models.CollectionEntry{
		{
			MediaRecord: models.MediaRecord{ID: 1, Kind: models.MediaKindMovie, Title: "Heat", ReleaseDate: "1995-12-15"},
			Status:      models.StatusSeen,
			AddedAt:     1700000000000,
		},
		{
			MediaRecord: models.MediaRecord{ID: 2, Kind: models.MediaKindSeries, Title: "Dark"},
			Status:      models.StatusWatchlist,
			Events: []models.AgendaEvent{
				{Date: "2099-01-01", Label: "S4E1", EpisodeTitle: "Return"},
			},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data, err := transfer.Encode(sampleEntries())
	if err != nil {
		t.Fatal(err)
	}

	entries, err := transfer.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].AddedAt != 1700000000000 {
		t.Fatalf("addedAt lost in transit: %d", entries[0].AddedAt)
	}
	if len(entries[1].Events) != 1 || entries[1].Events[0].Label != "S4E1" {
		t.Fatalf("events lost in transit: %+v", entries[1].Events)
	}
}

func TestEncodeNilCollectionIsEmptyArray(t *testing.T) {
	data, err := transfer.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty array, got %q", data)
	}
}

func TestDecodeRejectsInvalidPayloads(t *testing.T) {
	cases := map[string][]byte{
		"json object":  []byte(`{"id":1}`),
		"prose":        []byte("not json at all"),
		"truncated":    []byte(`[{"id":1,`),
		"binary":       {0x1f, 0x8b, 0x08, 0x00, 0x00},
		"bare number":  []byte("42"),
		"empty string": []byte(""),
	}
	for name, payload := range cases {
		if _, err := transfer.Decode(payload); !errors.Is(err, transfer.ErrInvalidPayload) {
			t.Fatalf("%s: expected ErrInvalidPayload, got %v", name, err)
		}
	}
}

func TestDecodeAcceptsWhitespacePaddedArray(t *testing.T) {
	entries, err := transfer.Decode([]byte("\n  []\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty collection, got %v", entries)
	}
}

func TestFileRoundTrip(t *testing.T) {
	svc := transfer.NewService(afero.NewMemMapFs())

	if err := svc.ExportFile("backup/collection.json", sampleEntries()); err != nil {
		t.Fatal(err)
	}
	entries, err := svc.ImportFile("backup/collection.json")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[0].Title != "Heat" {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

func TestImportMissingFile(t *testing.T) {
	svc := transfer.NewService(afero.NewMemMapFs())
	if _, err := svc.ImportFile("nope.json"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
