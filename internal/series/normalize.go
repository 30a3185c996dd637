package series

import (
	"math"
	"strings"
	"time"
	"unicode"
)

const (
	// TMDB image base URL and the renditions used for each field
	imageBaseURL = "https://image.tmdb.org/t/p"
	posterSize   = "w500"
	backdropSize = "original"

	// Air dates arrive as ISO calendar dates
	airDateLayout = "2006-01-02"
)

// round1 rounds a primary-provider rating to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// titleCase capitalizes each word of a raw display name
func titleCase(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// imageURL builds an absolute image URL from a relative provider path.
// Returns nil for an absent path, never a prefix-only URL.
func imageURL(path, size string) *string {
	if path == "" {
		return nil
	}
	u := imageBaseURL + "/" + size + path
	return &u
}

// episodeUnreleased reports whether an episode has not aired yet. An
// absent or unparseable air date counts as unreleased; an air date of
// today counts as released.
func episodeUnreleased(airDate string, now time.Time) bool {
	if airDate == "" {
		return true
	}
	aired, err := time.Parse(airDateLayout, airDate)
	if err != nil {
		return true
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return aired.After(today)
}
