package ytt

import (
	"fmt"
	"net/url"

	"github.com/alanbriolat/ytt/generic"
)

// VideoID is an opaque, non-empty token naming a video. The zero value is not a valid VideoID.
type VideoID struct {
	value string
}

// NewVideoID wraps s as a VideoID, or returns ErrEmptyVideoID.
func NewVideoID(s string) (VideoID, error) {
	if s == "" {
		return VideoID{}, ErrEmptyVideoID
	}
	return VideoID{value: s}, nil
}

// MustVideoID wraps NewVideoID but panics if there is an error.
func MustVideoID(s string) VideoID {
	return generic.Unwrap(NewVideoID(s))
}

func (id VideoID) String() string {
	return id.value
}

// IsZero returns true for a VideoID that was not created by NewVideoID.
func (id VideoID) IsZero() bool {
	return id.value == ""
}

// WatchURL returns the canonical watch page URL for the video.
func (id VideoID) WatchURL() string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", url.QueryEscape(id.value))
}

// TranscriptLine is a single caption cue. Start and Duration are in seconds.
type TranscriptLine struct {
	Text     string
	Start    float64
	Duration float64
}

// Transcript is an ordered sequence of lines, in the order the source provided them.
type Transcript []TranscriptLine

// Texts returns just the text of each line.
func (t Transcript) Texts() []string {
	texts := make([]string, 0, len(t))
	for _, line := range t {
		texts = append(texts, line.Text)
	}
	return texts
}

// VideoMetadata holds best-effort descriptive fields; either may be absent.
type VideoMetadata struct {
	Title       generic.Option[string]
	Description generic.Option[string]
}

// Bundle is a transcript together with metadata, the unit of caching.
type Bundle struct {
	Transcript Transcript
	Metadata   VideoMetadata
}
