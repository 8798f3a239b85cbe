package metadata

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	headPattern  = regexp.MustCompile(`(?is)<head(?:\s[^>]*)?>.*?</head>`)
	titlePattern = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
)

const siteTitleSuffix = "- youtube"

// headRegion returns the <head>...</head> part of the document, or the whole document if there isn't one.
func headRegion(document string) string {
	if head := headPattern.FindString(document); head != "" {
		return head
	}
	return document
}

// MetaContent returns the content of the first <meta> tag whose property or name attribute equals name
// (case-insensitively), looking only in the <head> region when there is one. Tags are found by parsing the region
// as HTML, falling back to a regular expression if parsing fails or finds nothing. Entities are unescaped and an
// empty result counts as absent.
func MetaContent(document string, name string) (string, bool) {
	region := headRegion(document)
	if content, ok := metaContentParsed(region, name); ok {
		return content, true
	}
	return metaContentRegex(region, name)
}

func metaContentParsed(region string, name string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<root>" + region + "</root>"))
	if err != nil {
		return "", false
	}
	var content string
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		attr, ok := s.Attr("property")
		if !ok || attr == "" {
			attr, _ = s.Attr("name")
		}
		if !strings.EqualFold(attr, name) {
			return true
		}
		if value, ok := s.Attr("content"); ok && strings.TrimSpace(value) != "" {
			content = value
			return false
		}
		return true
	})
	return cleanValue(content)
}

func metaContentRegex(region string, name string) (string, bool) {
	quoted := regexp.QuoteMeta(name)
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(?is)<meta[^>]+(?:property|name)=["']` + quoted + `["'][^>]*content=(?:"([^"]*)"|'([^']*)')`),
		regexp.MustCompile(`(?is)<meta[^>]+content=(?:"([^"]*)"|'([^']*)')[^>]*(?:property|name)=["']` + quoted + `["']`),
	}
	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(region); m != nil {
			if value, ok := cleanValue(m[1] + m[2]); ok {
				return value, true
			}
		}
	}
	return "", false
}

// HTMLTitle returns the text of the <title> element, with a trailing "- YouTube" removed.
func HTMLTitle(document string) (string, bool) {
	m := titlePattern.FindStringSubmatch(document)
	if m == nil {
		return "", false
	}
	value := strings.TrimSpace(html.UnescapeString(m[1]))
	if n := len(value) - len(siteTitleSuffix); n >= 0 && strings.EqualFold(value[n:], siteTitleSuffix) {
		value = strings.TrimRight(value[:n], " \t\r\n")
	}
	return value, value != ""
}

func cleanValue(s string) (string, bool) {
	value := strings.TrimSpace(html.UnescapeString(strings.TrimSpace(s)))
	return value, value != ""
}
