package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"

	"github.com/rescoffi45/glassflix2/models"
)

// ErrInvalidPayload reports an import payload that is not a JSON array of
// collection entries. The active collection is left untouched when it occurs.
var ErrInvalidPayload = errors.New("import payload must be a JSON array of collection entries")

// Service serializes the active collection to portable JSON files and back.
// Only the top-level shape of an import is validated; per-item fields are
// taken as-is so exports from older versions keep importing.
type Service struct {
	fs afero.Fs
}

// NewService creates a transfer service using the given filesystem. Pass
// afero.NewOsFs() in production; tests run on an in-memory filesystem.
func NewService(fs afero.Fs) *Service {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Service{fs: fs}
}

// Encode serializes a collection verbatim to an indented JSON array.
func Encode(entries []models.CollectionEntry) ([]byte, error) {
	if entries == nil {
		entries = []models.CollectionEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}
	return data, nil
}

// Decode validates an import payload and returns the entries it holds. The
// payload must be JSON and its top level must be an array; anything else
// yields ErrInvalidPayload.
func Decode(data []byte) ([]models.CollectionEntry, error) {
	kind := mimetype.Detect(data)
	if !kind.Is("application/json") && !kind.Is("text/plain") {
		return nil, ErrInvalidPayload
	}
	if !strings.HasPrefix(strings.TrimSpace(string(data)), "[") {
		return nil, ErrInvalidPayload
	}

	var entries []models.CollectionEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, ErrInvalidPayload
	}
	return entries, nil
}

// ExportFile writes the collection to a JSON file at path.
func (s *Service) ExportFile(path string, entries []models.CollectionEntry) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(s.fs, path, data, 0644); err != nil {
		return fmt.Errorf("write export %q: %w", path, err)
	}
	return nil
}

// ImportFile reads and validates a collection file at path.
func (s *Service) ImportFile(path string) ([]models.CollectionEntry, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read import %q: %w", path, err)
	}
	return Decode(data)
}
