package ytt

import "strings"

// SelectTrack picks exactly one track from tracks, or returns ErrNotFound. The order of preference is:
//
//  1. the only manual track, if there is exactly one, whatever its language;
//  2. the first manual track matching a preferred language, trying languages in the order given;
//  3. the first generated track matching a preferred language, trying languages in the order given;
//  4. the first manual track;
//  5. the first generated track.
func SelectTrack(tracks []Track, preferred []string) (Track, error) {
	var manual, generated []Track
	for _, track := range tracks {
		if track.Generated {
			generated = append(generated, track)
		} else {
			manual = append(manual, track)
		}
	}

	if len(manual) == 1 {
		return manual[0], nil
	}
	if len(manual) > 0 && len(preferred) > 0 {
		if track, ok := firstInLanguages(manual, preferred); ok {
			return track, nil
		}
	}
	if len(preferred) > 0 {
		if track, ok := firstInLanguages(generated, preferred); ok {
			return track, nil
		}
	}
	if len(manual) > 0 {
		return manual[0], nil
	}
	if len(generated) > 0 {
		return generated[0], nil
	}
	return Track{}, ErrNotFound
}

func firstInLanguages(tracks []Track, languages []string) (Track, bool) {
	for _, language := range languages {
		for _, track := range tracks {
			if strings.EqualFold(track.Language, language) {
				return track, true
			}
		}
	}
	return Track{}, false
}
