package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const preferredLanguagesKey = "preferred_languages"

// Store is a ytt.ConfigStore backed by a JSON file. Settings it doesn't know about are preserved when saving.
type Store struct {
	path string
	log  *zap.SugaredLogger
}

func NewStore(path string) *Store {
	return &Store{path: path, log: zap.S().Named("config")}
}

// load returns the raw settings. A missing file is an empty config; an unreadable one is logged and treated the same.
func (s *Store) load() map[string]json.RawMessage {
	settings := make(map[string]json.RawMessage)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings
	} else if err != nil {
		s.log.Warnf("error loading config file %v: %v", s.path, err)
		return settings
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		s.log.Warnf("could not decode config file %v: %v", s.path, err)
		return make(map[string]json.RawMessage)
	}
	return settings
}

func (s *Store) save(settings map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to save config file %v: %w", s.path, err)
	}
	return nil
}

func (s *Store) PreferredLanguages() ([]string, error) {
	raw, ok := s.load()[preferredLanguagesKey]
	if !ok {
		return nil, nil
	}
	// Tolerate non-string items rather than discarding the whole list
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warnf("ignoring invalid %v in %v: %v", preferredLanguagesKey, s.path, err)
		return nil, nil
	}
	var languages []string
	for _, item := range items {
		if language, ok := item.(string); ok {
			languages = append(languages, language)
		}
	}
	return CleanLanguages(languages), nil
}

func (s *Store) SetPreferredLanguages(languages []string) error {
	settings := s.load()
	if raw, err := json.Marshal(CleanLanguages(languages)); err != nil {
		return err
	} else {
		settings[preferredLanguagesKey] = raw
	}
	return s.save(settings)
}

// CleanLanguages trims each language and drops empty ones. The result is never nil.
func CleanLanguages(languages []string) []string {
	cleaned := make([]string, 0, len(languages))
	for _, language := range languages {
		if language = strings.TrimSpace(language); language != "" {
			cleaned = append(cleaned, language)
		}
	}
	return cleaned
}

// ParseLanguages splits a comma separated list of languages.
func ParseLanguages(s string) []string {
	return CleanLanguages(strings.Split(s, ","))
}

// UnknownLanguages returns the languages which aren't well-formed BCP 47 tags. These are still usable, but will
// probably never match a track.
func UnknownLanguages(languages []string) []string {
	var unknown []string
	for _, l := range languages {
		if _, err := language.Parse(l); err != nil {
			unknown = append(unknown, l)
		}
	}
	return unknown
}
