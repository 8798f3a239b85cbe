// Package metadata recovers a video's title and description from its watch page markup.
//
// The page embeds two JSON documents, the player response and the initial page data, which are located with
// ExtractObject. Open Graph meta tags and the <title> element serve as fallbacks when those documents are missing or
// incomplete.
package metadata

import (
	"strings"

	"github.com/alanbriolat/ytt"
	"github.com/alanbriolat/ytt/generic"
)

// An Extractor turns watch page markup into ytt.VideoMetadata. The zero value uses DefaultBoilerplate.
type Extractor struct {
	Boilerplate *BoilerplateFilter
}

func New(boilerplate BoilerplateFilter) *Extractor {
	return &Extractor{Boilerplate: &boilerplate}
}

func (e *Extractor) filter() BoilerplateFilter {
	if e == nil || e.Boilerplate == nil {
		return DefaultBoilerplate
	}
	return *e.Boilerplate
}

// Extract applies each title and description strategy in turn, keeping the first usable result for each. It never
// fails; a field no strategy could produce is absent.
func (e *Extractor) Extract(document string) ytt.VideoMetadata {
	playerResponse, _ := ExtractObject(document, PlayerResponseMarker)
	initialData, _ := ExtractObject(document, InitialDataMarker)
	return ytt.VideoMetadata{
		Title:       e.title(playerResponse, document),
		Description: e.description(playerResponse, initialData, document),
	}
}

// Extract uses the default Extractor.
func Extract(document string) ytt.VideoMetadata {
	return (*Extractor)(nil).Extract(document)
}

func (e *Extractor) title(playerResponse map[string]any, document string) generic.Option[string] {
	strategies := []func() (string, bool){
		func() (string, bool) {
			return nonEmpty(lookupString(playerResponse, "videoDetails", "title"))
		},
		func() (string, bool) {
			return nonEmpty(lookupString(playerResponse, "microformat", "playerMicroformatRenderer", "title", "simpleText"))
		},
		func() (string, bool) {
			return MetaContent(document, "og:title")
		},
		func() (string, bool) {
			return HTMLTitle(document)
		},
	}
	for _, strategy := range strategies {
		if title, ok := strategy(); ok {
			return generic.Some(title)
		}
	}
	return generic.None[string]()
}

func (e *Extractor) description(playerResponse, initialData map[string]any, document string) generic.Option[string] {
	filter := e.filter()
	strategies := []func() (string, bool){
		func() (string, bool) {
			return nonEmpty(lookupString(playerResponse, "videoDetails", "shortDescription"))
		},
		func() (string, bool) {
			return nonEmpty(lookupString(playerResponse, "microformat", "playerMicroformatRenderer", "description", "simpleText"))
		},
		func() (string, bool) {
			return initialDataDescription(initialData)
		},
		func() (string, bool) {
			return MetaContent(document, "og:description")
		},
	}
	for _, strategy := range strategies {
		if candidate, ok := strategy(); ok {
			if description, ok := filter.Accept(candidate); ok {
				return generic.Some(description)
			}
		}
	}
	return generic.None[string]()
}

// initialDataDescription walks engagementPanels[].engagementPanelSectionListRenderer.content.sectionListRenderer
// .contents[].itemSectionRenderer.contents[].videoDescriptionRenderer and joins the text runs of the first description
// it finds.
func initialDataDescription(initialData map[string]any) (string, bool) {
	for _, panel := range lookupSlice(initialData, "engagementPanels") {
		renderer, ok := lookup(asObject(panel), "engagementPanelSectionListRenderer").(map[string]any)
		if !ok {
			continue
		}
		for _, item := range lookupSlice(renderer, "content", "sectionListRenderer", "contents") {
			for _, inner := range lookupSlice(asObject(item), "itemSectionRenderer", "contents") {
				descriptionRenderer, ok := lookup(asObject(inner), "videoDescriptionRenderer").(map[string]any)
				if !ok {
					continue
				}
				var text strings.Builder
				for _, run := range lookupSlice(descriptionRenderer, "description", "runs") {
					if s, ok := lookup(asObject(run), "text").(string); ok {
						text.WriteString(s)
					}
				}
				if description, ok := nonEmpty(strings.TrimSpace(text.String())); ok {
					return description, true
				}
			}
		}
	}
	return "", false
}

func asObject(v any) map[string]any {
	obj, _ := v.(map[string]any)
	return obj
}

func nonEmpty(s string) (string, bool) {
	return s, s != ""
}
