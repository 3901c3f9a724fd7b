// Package presets loads named numeric configurations (currency formats and
// the like) from JSON or YAML documents:
//
//	presets:
//	  czk:
//	    precision: 2
//	    suffix: " Kč"
//
// Keys follow numeric.FromMap. Only keys present in a preset are set, so a
// preset layered under field configuration leaves every other option at its
// default.
package presets

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-numeric-input/pkg/numeric"
)

// ErrUnknownPreset is returned when a preset name is not registered.
var ErrUnknownPreset = errors.New("presets: unknown preset")

//go:embed defaults/*.yaml
var embeddedDefaults embed.FS

// Store holds presets keyed by lowercase name.
type Store struct {
	presets map[string]*numeric.FieldConfiguration
}

type documentFile struct {
	Presets map[string]map[string]any `json:"presets" yaml:"presets"`
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Default returns the store built from the embedded preset files.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = LoadFS(EmbeddedFS())
	})
	return defaultStore, defaultErr
}

// EmbeddedFS exposes the embedded preset documents.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDefaults, "defaults")
	if err != nil {
		return embeddedDefaults
	}
	return sub
}

// LoadFS walks fsys and parses every .json, .yaml and .yml file. Defining the
// same preset twice is an error.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{presets: make(map[string]*numeric.FieldConfiguration)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPresetFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("presets: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, raw := range doc.Presets {
			key := normaliseName(name)
			if key == "" {
				return fmt.Errorf("presets: file %s defines an empty preset name", path)
			}
			if _, exists := store.presets[key]; exists {
				return fmt.Errorf("presets: duplicate preset %q (file %s)", key, path)
			}
			cfg, err := numeric.FromMap(raw)
			if err != nil {
				return fmt.Errorf("presets: %s: preset %q: %w", path, key, err)
			}
			store.presets[key] = cfg
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Register adds or replaces a preset.
func (s *Store) Register(name string, cfg *numeric.FieldConfiguration) error {
	key := normaliseName(name)
	if key == "" {
		return errors.New("presets: preset name is required")
	}
	if s.presets == nil {
		s.presets = make(map[string]*numeric.FieldConfiguration)
	}
	s.presets[key] = cfg.Clone()
	return nil
}

// Lookup returns a copy of the named preset.
func (s *Store) Lookup(name string) (*numeric.FieldConfiguration, error) {
	if s != nil {
		if cfg, ok := s.presets[normaliseName(name)]; ok {
			return cfg.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownPreset, strings.TrimSpace(name))
}

// Names returns the sorted preset names.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseDocument(data []byte, path string) (documentFile, error) {
	var doc documentFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("presets: parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("presets: parse %s: %w", path, err)
		}
	}
	return doc, nil
}

func isPresetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func normaliseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
