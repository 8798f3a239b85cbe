package util

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var (
	ErrNoSegment = errors.New("path has no such segment")
)

var (
	markdownLinkFull     = regexp.MustCompile(`^!?\[[^\[\]]*\]\(([^()\s]+)\)$`)
	markdownLinkAnywhere = regexp.MustCompile(`!?\[[^\[\]]*\]\(([^()\s]+)\)`)
)

// URLFromMarkdown returns the target of a markdown link ([text](url) or ![text](url)) if s is one, or contains one,
// and otherwise returns s unchanged.
func URLFromMarkdown(s string) string {
	if m := markdownLinkFull.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := markdownLinkAnywhere.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

// PathSegment returns the n-th "/"-delimited segment of the URL path, counting the empty segment before the leading
// slash as segment 0, so that PathSegment("/embed/abc", 2) is "abc".
func PathSegment(url *url.URL, n int) (string, error) {
	if url == nil {
		return "", ErrNoSegment
	}
	segments := strings.Split(url.Path, "/")
	if n < 0 || n >= len(segments) || segments[n] == "" {
		return "", ErrNoSegment
	}
	return segments[n], nil
}

// PathSegmentFromString is like PathSegment, but parses the URL first.
func PathSegmentFromString(s string, n int) (string, error) {
	if parsedURL, err := url.Parse(s); err != nil {
		return "", err
	} else {
		return PathSegment(parsedURL, n)
	}
}
