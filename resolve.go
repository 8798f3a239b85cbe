package ytt

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/alanbriolat/ytt/generic"
	"github.com/alanbriolat/ytt/util"
)

var (
	watchHosts    = generic.NewSet("youtube.com", "www.youtube.com", "m.youtube.com")
	shortLinkHost = "youtu.be"
)

var (
	errNoVideoParam   = errors.New("missing ?v= query parameter")
	errNotWatchPage   = errors.New("not a watch page")
	errNotShortLink   = errors.New("not a short link")
	errPrefixMismatch = errors.New("path prefix does not match")
)

// matchWatch handles http(s)://(www|m).youtube.com/watch?v={VIDEO_ID}
func matchWatch(u *url.URL) (string, error) {
	if !watchHosts.Contains(strings.ToLower(u.Hostname())) || u.Path != "/watch" {
		return "", errNotWatchPage
	}
	values, ok := u.Query()["v"]
	if !ok || len(values) == 0 {
		return "", errNoVideoParam
	}
	return values[0], nil
}

// matchShortLink handles http(s)://youtu.be/{VIDEO_ID}
func matchShortLink(u *url.URL) (string, error) {
	if strings.ToLower(u.Hostname()) != shortLinkHost || u.Path == "" {
		return "", errNotShortLink
	}
	return strings.TrimLeft(u.Path, "/"), nil
}

// matchPathPrefix returns a MatchFunc for paths like /{prefix}/{VIDEO_ID}, on any host.
func matchPathPrefix(prefix string) MatchFunc {
	return func(u *url.URL) (string, error) {
		if !strings.HasPrefix(u.Path, "/"+prefix+"/") {
			return "", errPrefixMismatch
		}
		return util.PathSegment(u, 2)
	}
}

// NewDefaultRuleRegistry returns a registry with the standard URL forms, in the order they are tried.
func NewDefaultRuleRegistry() *RuleRegistry {
	r := &RuleRegistry{}
	r.MustCreate("watch", matchWatch)
	r.MustCreate("short-link", matchShortLink)
	r.MustCreate("embed", matchPathPrefix("embed"))
	r.MustCreate("v", matchPathPrefix("v"))
	r.MustCreate("shorts", matchPathPrefix("shorts"))
	return r
}

var DefaultRuleRegistry = NewDefaultRuleRegistry()

// Resolve extracts a VideoID from free-form input: a bare URL, a markdown link wrapping a URL (possibly in the middle
// of other text), or anything else, which will normally fail with ErrNotFound.
func (r *RuleRegistry) Resolve(input string) (VideoID, error) {
	candidate := util.URLFromMarkdown(strings.TrimSpace(input))
	parsedURL, err := url.Parse(candidate)
	if err != nil {
		return VideoID{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	match, err := r.Match(parsedURL)
	if err != nil {
		return VideoID{}, err
	}
	return match.VideoID, nil
}

// Resolve uses DefaultRuleRegistry to extract a VideoID from input.
func Resolve(input string) (VideoID, error) {
	return DefaultRuleRegistry.Resolve(input)
}
