package ytt

import "context"

// Track is one available transcript option for a video. It is only meaningful to the TranscriptProvider that
// returned it, which uses Handle to materialise the transcript.
type Track struct {
	Language  string
	Name      string
	Generated bool
	Handle    any
}

func (t Track) String() string {
	kind := "manual"
	if t.Generated {
		kind = "generated"
	}
	return t.Language + " (" + kind + ")"
}

// A TranscriptProvider lists and materialises the transcript tracks of a video.
type TranscriptProvider interface {
	// ListTracks returns the tracks available for a video, in the order the upstream lists them. It should return
	// ErrTranscriptsDisabled if the video has no captions.
	ListTracks(ctx context.Context, id VideoID) ([]Track, error)
	// FetchTranscript materialises a Track previously returned by ListTracks.
	FetchTranscript(ctx context.Context, track Track) (Transcript, error)
}

// A PageFetcher returns the raw markup of a video's watch page.
type PageFetcher interface {
	FetchPage(ctx context.Context, id VideoID) (string, error)
}

// A ConfigStore persists the user's preferred transcript languages.
type ConfigStore interface {
	PreferredLanguages() ([]string, error)
	SetPreferredLanguages(languages []string) error
}

// A Clipboard can copy text to, and read text from, the system clipboard.
type Clipboard interface {
	Copy(text string) error
	Read() (string, error)
}
