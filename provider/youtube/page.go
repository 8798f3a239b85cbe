package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/alanbriolat/ytt"
)

const (
	DefaultPageURL   = "https://www.youtube.com/watch"
	desktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	acceptLanguage   = "en-US,en;q=0.9"
)

// PageFetcher is a ytt.PageFetcher that downloads the watch page.
type PageFetcher struct {
	// BaseURL is the watch page URL, without the video ID query parameter. Defaults to DefaultPageURL.
	BaseURL    string
	HTTPClient *http.Client
}

func NewPageFetcher(client *http.Client) *PageFetcher {
	return &PageFetcher{BaseURL: DefaultPageURL, HTTPClient: client}
}

func (f *PageFetcher) FetchPage(ctx context.Context, id ytt.VideoID) (string, error) {
	baseURL := f.BaseURL
	if baseURL == "" {
		baseURL = DefaultPageURL
	}
	client := f.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?v="+url.QueryEscape(id.String()), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", desktopUserAgent)
	req.Header.Set("Accept-Language", acceptLanguage)

	if body, err := doRequest(ctx, client, req); err != nil {
		return "", fmt.Errorf("failed to fetch watch page: %w", err)
	} else {
		return string(body), nil
	}
}
