// Package repository returns transcript bundles for videos, from the cache when possible and from upstream
// otherwise.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/r3labs/diff/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alanbriolat/ytt"
	"github.com/alanbriolat/ytt/internal/cache"
	"github.com/alanbriolat/ytt/metadata"
)

const DefaultTimeout = 10 * time.Second

type Option func(*Repository)

// WithTimeout bounds each upstream call. Zero or negative means no limit.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Repository) {
		r.timeout = timeout
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(r *Repository) {
		r.log = log
	}
}

// WithExtractor replaces the metadata extractor, e.g. to use a different boilerplate filter.
func WithExtractor(extractor *metadata.Extractor) Option {
	return func(r *Repository) {
		r.extractor = extractor
	}
}

type Repository struct {
	store       cache.Store
	transcripts ytt.TranscriptProvider
	pages       ytt.PageFetcher
	extractor   *metadata.Extractor
	timeout     time.Duration
	log         *zap.SugaredLogger
	now         func() time.Time
}

func New(store cache.Store, transcripts ytt.TranscriptProvider, pages ytt.PageFetcher, opts ...Option) *Repository {
	r := &Repository{
		store:       store,
		transcripts: transcripts,
		pages:       pages,
		extractor:   &metadata.Extractor{},
		timeout:     DefaultTimeout,
		log:         zap.S().Named("repository"),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Retrieve returns the bundle for id. Unless refresh is set, a readable cache entry for (id, preferred) is returned
// without any upstream calls. Otherwise the bundle is acquired from upstream and written to the cache before being
// returned; failure to read or write the cache is only logged. Failure to acquire a transcript is ytt.ErrNotFound.
func (r *Repository) Retrieve(ctx context.Context, id ytt.VideoID, preferred []string, refresh bool) (ytt.Bundle, error) {
	key := cache.NewKey(id, preferred)
	log := r.log.With("key", key.String())

	var previous *cache.Entry
	if refresh && !log.Desugar().Core().Enabled(zapcore.DebugLevel) {
		// The previous entry is only needed to log what changed
		log.Debug("refreshing without reading cache")
	} else if entry, err := r.store.Get(key); errors.Is(err, cache.ErrMiss) {
		log.Debug("cache miss")
	} else if err != nil {
		log.Warnf("ignoring unreadable cache entry: %v", err)
	} else if refresh {
		log.Debug("cache hit, refreshing anyway")
		previous = entry
	} else {
		log.Debug("cache hit")
		return entry.Bundle(), nil
	}

	bundle, track, err := r.acquire(ctx, id, preferred)
	if err != nil {
		return ytt.Bundle{}, fmt.Errorf("%w: no transcript for video %v (languages: %v): %w", ytt.ErrNotFound, id, describeLanguages(preferred), err)
	}

	entry := cache.NewEntry(key, bundle)
	entry.TrackLanguage = track.Language
	entry.TrackGenerated = track.Generated
	entry.FetchedAt = r.now().UTC()
	if previous != nil {
		r.logChanges(log, previous, entry)
	}
	if err := r.store.Put(key, entry); err != nil {
		log.Warnf("failed to write cache entry: %v", err)
	}
	return bundle, nil
}

func (r *Repository) acquire(ctx context.Context, id ytt.VideoID, preferred []string) (ytt.Bundle, ytt.Track, error) {
	var tracks []ytt.Track
	err := r.withTimeout(ctx, func(ctx context.Context) (err error) {
		tracks, err = r.transcripts.ListTracks(ctx, id)
		return err
	})
	if err != nil {
		return ytt.Bundle{}, ytt.Track{}, err
	}

	track, err := ytt.SelectTrack(tracks, preferred)
	if err != nil {
		return ytt.Bundle{}, ytt.Track{}, fmt.Errorf("%w: no suitable track among %v", ytt.ErrNoTranscript, tracks)
	}
	r.log.Debugf("selected track %v for %v", track, id)

	var transcript ytt.Transcript
	err = r.withTimeout(ctx, func(ctx context.Context) (err error) {
		transcript, err = r.transcripts.FetchTranscript(ctx, track)
		return err
	})
	if err != nil {
		return ytt.Bundle{}, ytt.Track{}, err
	} else if len(transcript) == 0 {
		return ytt.Bundle{}, ytt.Track{}, ytt.ErrNoTranscript
	}

	return ytt.Bundle{Transcript: transcript, Metadata: r.metadata(ctx, id)}, track, nil
}

func (r *Repository) metadata(ctx context.Context, id ytt.VideoID) ytt.VideoMetadata {
	var page string
	err := r.withTimeout(ctx, func(ctx context.Context) (err error) {
		page, err = r.pages.FetchPage(ctx, id)
		return err
	})
	if err != nil {
		r.log.Warnf("failed to fetch metadata for %v: %v", id, err)
		return ytt.VideoMetadata{}
	}
	return r.extractor.Extract(page)
}

func (r *Repository) withTimeout(ctx context.Context, f func(context.Context) error) error {
	if r.timeout <= 0 {
		return f(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return f(ctx)
}

func (r *Repository) logChanges(log *zap.SugaredLogger, previous, current *cache.Entry) {
	if !log.Desugar().Core().Enabled(zapcore.DebugLevel) {
		return
	}
	// FetchedAt always changes
	before, after := *previous, *current
	before.FetchedAt, after.FetchedAt = time.Time{}, time.Time{}
	if changes, err := diff.Diff(before, after); err != nil {
		log.Debugf("failed to compare cache entries: %v", err)
	} else if len(changes) == 0 {
		log.Debug("refreshed entry is unchanged")
	} else {
		for _, change := range changes {
			log.Debugf("refreshed entry changed: %v %v: %#v -> %#v", change.Type, strings.Join(change.Path, "."), change.From, change.To)
		}
	}
}

func describeLanguages(languages []string) string {
	if len(languages) == 0 {
		return "any"
	}
	return strings.Join(languages, ", ")
}
