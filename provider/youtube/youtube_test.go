package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kkdai/youtube/v2"
	assert_ "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanbriolat/ytt"
)

type fakeVideoClient struct {
	video *youtube.Video
	err   error
	urls  []string
}

func (c *fakeVideoClient) GetVideoContext(ctx context.Context, url string) (*youtube.Video, error) {
	c.urls = append(c.urls, url)
	return c.video, c.err
}

func caption(language, name, kind, baseURL string) youtube.CaptionTrack {
	track := youtube.CaptionTrack{BaseURL: baseURL, LanguageCode: language, Kind: kind}
	track.Name.SimpleText = name
	return track
}

func TestProviderListTracks(t *testing.T) {
	assert := assert_.New(t)
	client := &fakeVideoClient{video: &youtube.Video{CaptionTracks: []youtube.CaptionTrack{
		caption("en", "English", "", "https://example.com/en"),
		caption("en", "English (auto-generated)", "asr", "https://example.com/en-asr"),
		caption("fr", "French", "", ""),
	}}}
	p := New(WithVideoClient(client))

	tracks, err := p.ListTracks(context.Background(), ytt.MustVideoID("abc"))
	assert.NoError(err)
	assert.Equal([]ytt.Track{
		{Language: "en", Name: "English", Generated: false, Handle: "https://example.com/en"},
		{Language: "en", Name: "English (auto-generated)", Generated: true, Handle: "https://example.com/en-asr"},
	}, tracks)
	assert.Equal([]string{"https://www.youtube.com/watch?v=abc"}, client.urls)
}

func TestProviderListTracksDisabled(t *testing.T) {
	assert := assert_.New(t)
	p := New(WithVideoClient(&fakeVideoClient{video: &youtube.Video{}}))

	_, err := p.ListTracks(context.Background(), ytt.MustVideoID("abc"))
	assert.ErrorIs(err, ytt.ErrTranscriptsDisabled)
}

func TestProviderListTracksError(t *testing.T) {
	assert := assert_.New(t)
	upstream := errors.New("upstream exploded")
	p := New(WithVideoClient(&fakeVideoClient{err: upstream}))

	_, err := p.ListTracks(context.Background(), ytt.MustVideoID("abc"))
	assert.ErrorIs(err, upstream)
}

func TestProviderFetchTranscript(t *testing.T) {
	assert := assert_.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			fmt.Fprint(w, `<transcript><text start="0" dur="1">one</text><text start="1" dur="1">two</text></transcript>`)
		case "/empty":
			fmt.Fprint(w, `<transcript></transcript>`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()
	p := New(WithHTTPClient(server.Client()), WithVideoClient(&fakeVideoClient{}))
	ctx := context.Background()

	transcript, err := p.FetchTranscript(ctx, ytt.Track{Language: "en", Handle: server.URL + "/ok"})
	require.NoError(t, err)
	assert.Equal([]string{"one", "two"}, transcript.Texts())

	_, err = p.FetchTranscript(ctx, ytt.Track{Language: "en", Handle: server.URL + "/empty"})
	assert.ErrorIs(err, ytt.ErrNoTranscript)

	_, err = p.FetchTranscript(ctx, ytt.Track{Language: "en", Handle: server.URL + "/missing"})
	assert.ErrorContains(err, "404")

	_, err = p.FetchTranscript(ctx, ytt.Track{Language: "en"})
	assert.ErrorIs(err, ytt.ErrNoTranscript)
}

func TestProviderFetchTranscriptCancelled(t *testing.T) {
	assert := assert_.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<transcript><text start="0" dur="1">one</text></transcript>`)
	}))
	defer server.Close()
	p := New(WithHTTPClient(server.Client()), WithVideoClient(&fakeVideoClient{}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.FetchTranscript(ctx, ytt.Track{Language: "en", Handle: server.URL})
	assert.ErrorIs(err, context.Canceled)
}

func TestPageFetcher(t *testing.T) {
	assert := assert_.New(t)
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		fmt.Fprint(w, `<html><head><title>A video - YouTube</title></head></html>`)
	}))
	defer server.Close()
	f := &PageFetcher{BaseURL: server.URL + "/watch", HTTPClient: server.Client()}

	page, err := f.FetchPage(context.Background(), ytt.MustVideoID("abc"))
	require.NoError(t, err)
	assert.Contains(page, "A video - YouTube")
	assert.Equal("/watch", got.URL.Path)
	assert.Equal("abc", got.URL.Query().Get("v"))
	assert.Equal(acceptLanguage, got.Header.Get("Accept-Language"))
	assert.Contains(got.Header.Get("User-Agent"), "Mozilla/5.0")
}

func TestPageFetcherError(t *testing.T) {
	assert := assert_.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()
	f := &PageFetcher{BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := f.FetchPage(context.Background(), ytt.MustVideoID("abc"))
	assert.ErrorContains(err, "429")
}
