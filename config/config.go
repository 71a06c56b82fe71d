package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the full application configuration persisted as TOML.
type Settings struct {
	Server   ServerSettings  `toml:"server"`
	Catalog  CatalogSettings `toml:"catalog"`
	Gemini   GeminiSettings  `toml:"gemini"`
	Storage  StorageSettings `toml:"storage"`
	Log      LogSettings     `toml:"log"`
	Language string          `toml:"language"` // app language: "en" | "fr"
	Timezone string          `toml:"timezone"` // IANA zone used for "today" comparisons
}

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	Bind string `toml:"bind"`
}

// CatalogSettings configures the TMDB catalog client.
type CatalogSettings struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// GeminiSettings configures the recommendation client.
type GeminiSettings struct {
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
	BaseURL string `toml:"base_url"`
}

// StorageSettings configures local persistence.
type StorageSettings struct {
	DatabasePath string `toml:"database_path"`
}

// LogSettings configures structured logging output.
type LogSettings struct {
	Level  string `toml:"level"`  // debug | info | warn | error
	Format string `toml:"format"` // text | json
	File   string `toml:"file"`   // optional rotated log file
}

// DefaultSettings returns the configuration used when no file exists yet.
func DefaultSettings() *Settings {
	return &Settings{
		Server: ServerSettings{
			Bind: "127.0.0.1:8480",
		},
		Catalog: CatalogSettings{
			BaseURL: "https://api.themoviedb.org/3",
		},
		Gemini: GeminiSettings{
			Model:   "gemini-2.5-flash",
			BaseURL: "https://generativelanguage.googleapis.com",
		},
		Storage: StorageSettings{
			DatabasePath: "data/glassflix.db",
		},
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
		Language: "en",
	}
}

// Manager loads and saves settings from a TOML file, caching the last loaded
// copy so hot paths don't re-read the file.
type Manager struct {
	path string

	mu     sync.RWMutex
	cached *Settings
}

// NewManager creates a manager for the settings file at path. The file is not
// required to exist; Load falls back to defaults.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Load returns the current settings, reading the file on first use. A missing
// file yields defaults rather than an error.
func (m *Manager) Load() (*Settings, error) {
	m.mu.RLock()
	if m.cached != nil {
		defer m.mu.RUnlock()
		return m.cached.clone(), nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cached != nil {
		return m.cached.clone(), nil
	}

	settings := DefaultSettings()
	data, err := os.ReadFile(m.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %q: %w", m.path, err)
		}
	} else if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", m.path, err)
	}

	m.cached = settings
	return settings.clone(), nil
}

// Save persists the given settings and replaces the cached copy.
func (m *Manager) Save(settings *Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	dir := filepath.Dir(m.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("write config %q: %w", m.path, err)
	}

	m.mu.Lock()
	m.cached = settings.clone()
	m.mu.Unlock()
	return nil
}

func (s *Settings) clone() *Settings {
	cp := *s
	return &cp
}

// CatalogLocale maps the app language to the locale the catalog API expects.
func (s *Settings) CatalogLocale() string {
	if s.Language == "fr" {
		return "fr-FR"
	}
	return "en-US"
}
