package metadata

import (
	"encoding/json"
	"strings"
)

const (
	PlayerResponseMarker = "ytInitialPlayerResponse"
	InitialDataMarker    = "ytInitialData"
)

// ExtractObject finds the first occurrence of marker in text, then the JSON object starting at the next "{", and
// decodes it. Braces inside string literals are ignored. It returns false if the marker or the opening brace is
// missing, if the object is never closed, or if the balanced text does not decode as a JSON object.
func ExtractObject(text string, marker string) (map[string]any, bool) {
	candidate, ok := balancedObject(text, marker)
	if !ok {
		return nil, false
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func balancedObject(text string, marker string) (string, bool) {
	markerIndex := strings.Index(text, marker)
	if markerIndex < 0 {
		return "", false
	}
	start := strings.IndexByte(text[markerIndex:], '{')
	if start < 0 {
		return "", false
	}
	start += markerIndex

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// lookup walks nested objects by key, returning nil if any step is missing or not an object.
func lookup(obj map[string]any, keys ...string) any {
	var current any = obj
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[key]
	}
	return current
}

// lookupString is like lookup, but returns the trimmed value only if it is a string.
func lookupString(obj map[string]any, keys ...string) string {
	if s, ok := lookup(obj, keys...).(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func lookupSlice(obj map[string]any, keys ...string) []any {
	if s, ok := lookup(obj, keys...).([]any); ok {
		return s
	}
	return nil
}
