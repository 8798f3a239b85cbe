// Package cache stores transcript bundles on disk, keyed by video ID and the set of preferred languages.
package cache

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/alanbriolat/ytt"
	"github.com/alanbriolat/ytt/generic"
)

const (
	// AnyLanguage is the language token used when there are no preferred languages.
	AnyLanguage = "any"
	// KeySeparator separates the video ID from the language token in Key.String.
	KeySeparator = "::"

	languageSeparator = "_"
)

var (
	// ErrMiss is returned by Store.Get when there is no entry for the key.
	ErrMiss = errors.New("cache miss")
	// ErrCorrupt is returned by Store.Get when an entry exists but can't be decoded.
	ErrCorrupt = errors.New("corrupt cache entry")
)

// Key identifies a cache entry.
type Key struct {
	VideoID   string
	Languages string
}

// NewKey normalises languages (lower-cased, de-duplicated, sorted; AnyLanguage if there are none) and combines them
// with id.
func NewKey(id ytt.VideoID, languages []string) Key {
	return Key{VideoID: id.String(), Languages: LanguageToken(languages)}
}

func (k Key) String() string {
	return k.VideoID + KeySeparator + k.Languages
}

// LanguageToken returns the normalised form of a language preference list.
func LanguageToken(languages []string) string {
	set := generic.NewSet[string]()
	for _, language := range languages {
		if language = strings.ToLower(strings.TrimSpace(language)); language != "" {
			set.Add(language)
		}
	}
	if set.Count() == 0 {
		return AnyLanguage
	}
	normalised := set.ToSlice()
	sort.Strings(normalised)
	return strings.Join(normalised, languageSeparator)
}

// Line is the stored form of ytt.TranscriptLine.
type Line struct {
	Text     string  `msgpack:"text"`
	Start    float64 `msgpack:"start"`
	Duration float64 `msgpack:"duration"`
}

// Entry is the stored form of a ytt.Bundle, plus some information about how it was acquired.
type Entry struct {
	VideoID        string    `msgpack:"video_id"`
	Languages      string    `msgpack:"languages"`
	TrackLanguage  string    `msgpack:"track_language"`
	TrackGenerated bool      `msgpack:"track_generated"`
	FetchedAt      time.Time `msgpack:"fetched_at"`
	Title          *string   `msgpack:"title"`
	Description    *string   `msgpack:"description"`
	Lines          []Line    `msgpack:"lines"`
}

// NewEntry converts bundle for storage under key.
func NewEntry(key Key, bundle ytt.Bundle) *Entry {
	entry := &Entry{
		VideoID:     key.VideoID,
		Languages:   key.Languages,
		Title:       bundle.Metadata.Title.Ptr(),
		Description: bundle.Metadata.Description.Ptr(),
		Lines:       make([]Line, 0, len(bundle.Transcript)),
	}
	for _, line := range bundle.Transcript {
		entry.Lines = append(entry.Lines, Line{Text: line.Text, Start: line.Start, Duration: line.Duration})
	}
	return entry
}

// Bundle converts the entry back to a ytt.Bundle.
func (e *Entry) Bundle() ytt.Bundle {
	transcript := make(ytt.Transcript, 0, len(e.Lines))
	for _, line := range e.Lines {
		transcript = append(transcript, ytt.TranscriptLine{Text: line.Text, Start: line.Start, Duration: line.Duration})
	}
	return ytt.Bundle{
		Transcript: transcript,
		Metadata: ytt.VideoMetadata{
			Title:       generic.FromPtr(e.Title),
			Description: generic.FromPtr(e.Description),
		},
	}
}

// Store persists entries. Get returns ErrMiss if there is no entry, and ErrCorrupt (possibly wrapped) if the entry
// can't be decoded. Put replaces any existing entry.
type Store interface {
	Get(key Key) (*Entry, error)
	Put(key Key, entry *Entry) error
	Close() error
}

func encode(entry *Entry) ([]byte, error) {
	return msgpack.Marshal(entry)
}

func decode(data []byte) (*Entry, error) {
	var entry Entry
	if err := msgpack.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(entry.Lines) == 0 {
		return nil, fmt.Errorf("%w: entry has no transcript lines", ErrCorrupt)
	}
	return &entry, nil
}

const (
	BackendFile = "file"
	BackendBolt = "bolt"

	boltFileName = "cache.db"
)

// Backends lists the accepted values for Open's backend argument.
var Backends = []string{BackendFile, BackendBolt}

// Open returns the Store for backend, rooted at dir. Neither backend touches the filesystem until it is first
// used.
func Open(backend string, dir string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(dir), nil
	case BackendBolt:
		return NewBoltStore(filepath.Join(dir, boltFileName)), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q (expected one of: %s)", backend, strings.Join(Backends, ", "))
	}
}
