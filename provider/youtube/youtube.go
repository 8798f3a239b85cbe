// Package youtube implements the upstream collaborators of the repository against YouTube: caption track listing
// and transcript download (TranscriptProvider), and the watch page (PageFetcher).
package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/kkdai/youtube/v2"
	"go.uber.org/zap"

	"github.com/alanbriolat/ytt"
)

// Maximum number of bytes read from any single upstream response.
const maxBodySize = 8 << 20

// VideoClient is the subset of youtube.Client used to look up a video's caption tracks.
type VideoClient interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
}

type ProviderOption func(*Provider)

// WithHTTPClient sets the HTTP client used for both track listing and transcript download.
func WithHTTPClient(client *http.Client) ProviderOption {
	return func(p *Provider) {
		p.httpClient = client
	}
}

// WithVideoClient replaces the client used to list caption tracks.
func WithVideoClient(client VideoClient) ProviderOption {
	return func(p *Provider) {
		p.videoClient = client
	}
}

// Provider is a ytt.TranscriptProvider backed by YouTube caption tracks.
type Provider struct {
	httpClient  *http.Client
	videoClient VideoClient
	log         *zap.SugaredLogger
}

func New(opts ...ProviderOption) *Provider {
	p := &Provider{
		httpClient: http.DefaultClient,
		log:        zap.S().Named("youtube"),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.videoClient == nil {
		p.videoClient = &youtube.Client{HTTPClient: p.httpClient}
	}
	return p
}

func (p *Provider) ListTracks(ctx context.Context, id ytt.VideoID) ([]ytt.Track, error) {
	video, err := p.videoClient.GetVideoContext(ctx, id.WatchURL())
	if err != nil {
		return nil, fmt.Errorf("failed to get video info: %w", err)
	}
	tracks := tracksFromCaptions(video.CaptionTracks)
	if len(tracks) == 0 {
		return nil, ytt.ErrTranscriptsDisabled
	}
	p.log.Debugf("found %d caption tracks for %v: %v", len(tracks), id, tracks)
	return tracks, nil
}

func (p *Provider) FetchTranscript(ctx context.Context, track ytt.Track) (ytt.Transcript, error) {
	baseURL, ok := track.Handle.(string)
	if !ok || baseURL == "" {
		return nil, fmt.Errorf("%w: track %v has no caption URL", ytt.ErrNoTranscript, track)
	}
	body, err := p.get(ctx, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transcript: %w", err)
	}
	transcript, err := DecodeTimedText(body)
	if err != nil {
		return nil, err
	}
	return transcript, nil
}

func (p *Provider) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return doRequest(ctx, p.httpClient, req)
}

func doRequest(ctx context.Context, client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %v", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(ytt.NewContextReader(ctx, resp.Body), maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

func tracksFromCaptions(captions []youtube.CaptionTrack) []ytt.Track {
	tracks := make([]ytt.Track, 0, len(captions))
	for _, caption := range captions {
		if caption.BaseURL == "" {
			continue
		}
		tracks = append(tracks, ytt.Track{
			Language:  caption.LanguageCode,
			Name:      caption.Name.SimpleText,
			Generated: caption.Kind == "asr",
			Handle:    caption.BaseURL,
		})
	}
	return tracks
}
